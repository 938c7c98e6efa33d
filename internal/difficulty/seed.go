package difficulty

// DefaultTier is the tier a new session starts on.
const DefaultTier = "easy"

var builtinTiers = []Tier{
	{
		Name:           "easy",
		Addition:       OperatorRange{Min: 2, Max: 10},
		Subtraction:    OperatorRange{Min: 1, Max: 10},
		Multiplication: OperatorRange{Min: 1, Max: 5},
		Division:       OperatorRange{Min: 1, Max: 5, Divisors: []int{2, 3, 4, 5}},
	},
	{
		Name:           "medium",
		Addition:       OperatorRange{Min: 5, Max: 20},
		Subtraction:    OperatorRange{Min: 3, Max: 20},
		Multiplication: OperatorRange{Min: 2, Max: 10},
		Division:       OperatorRange{Min: 2, Max: 10, Divisors: []int{2, 3, 4, 5, 6, 7, 8, 9, 10}},
	},
	{
		Name:           "hard",
		Addition:       OperatorRange{Min: 10, Max: 100},
		Subtraction:    OperatorRange{Min: 10, Max: 100},
		Multiplication: OperatorRange{Min: 5, Max: 20},
		Division:       OperatorRange{Min: 5, Max: 12, Divisors: []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
	},
}

// Defaults returns the built-in easy, medium and hard tiers.
func Defaults() *Set {
	s, err := NewSet(builtinTiers...)
	if err != nil {
		panic("difficulty: builtin tiers are invalid: " + err.Error())
	}
	return s
}
