package category

// Repository provides the ordered rule tables of the classifier.
type Repository interface {
	FamilyRules() []Rule
	OverrideRules() []Rule
	CategoryRules() []Rule
}
