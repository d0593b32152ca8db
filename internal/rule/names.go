package rule

// Names returns the atom names of expression in source order, duplicates
// included. It fails on the same lexical and syntax errors as Evaluate.
func Names(expression string) ([]string, error) {
	var names []string
	_, err := Evaluate(expression, ResolverFunc(func(name string) (bool, error) {
		names = append(names, name)
		return false, nil
	}))
	if err != nil {
		return nil, err
	}
	return names, nil
}
