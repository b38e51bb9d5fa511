package stringnorm

// Flatten unpacks trees of normalizers into a simple List of atomic
// Normalizers. Nil entries are dropped.
func Flatten(norms ...Normalizer) List {
	res := List{}
	var traverse func(Normalizer)
	traverse = func(n Normalizer) {
		switch act := n.(type) {
		case nil:
		case List:
			for _, child := range act {
				traverse(child)
			}
		default:
			res = append(res, n)
		}
	}
	for _, n := range norms {
		traverse(n)
	}
	return res
}
