package flatbush

// sortByKey sorts keys ascending and applies the same permutation to items.
// It is a Hoare-partition quicksort with a middle pivot. It is not stable.
//
// The larger partition is always deferred onto an explicit stack and the smaller
// one is processed next, so the stack never grows past log2(len(keys)) entries.
func sortByKey[E any](keys []uint32, items []E) {
	if len(keys) != len(items) {
		fmtPanic("sortByKey: %d keys for %d items", len(keys), len(items))
	}

	type span struct{ left, right int }
	stack := make([]span, 0, 32)
	left, right := 0, len(keys)-1

	for {
		for left < right {
			j := partition(keys, items, left, right)
			if j-left < right-j-1 {
				stack = append(stack, span{j + 1, right})
				right = j
			} else {
				stack = append(stack, span{left, j})
				left = j + 1
			}
		}
		if len(stack) == 0 {
			return
		}
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		left, right = s.left, s.right
	}
}

// partition splits keys[left:right+1] around the key at its midpoint and returns j
// such that keys[left:j+1] <= pivot <= keys[j+1:right+1]. left <= j < right.
func partition[E any](keys []uint32, items []E, left, right int) int {
	pivot := keys[(left+right)>>1]
	i := left - 1
	j := right + 1

	for {
		i++
		for keys[i] < pivot {
			i++
		}
		j--
		for keys[j] > pivot {
			j--
		}
		if i >= j {
			return j
		}
		keys[i], keys[j] = keys[j], keys[i]
		items[i], items[j] = items[j], items[i]
	}
}
