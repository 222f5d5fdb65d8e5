package repository

import (
	"regexp"
	"strings"

	"github.com/fekuna/omnipos-sales-ledger/internal/category"
)

// Beverage matches drink names. It runs on the family first, then on the
// catalog name for lines left without a category.
const Beverage = `pepsi|max|coca|ice tea|orangina|cristaline|badoit|eau|vin|schweppes|jus|the|boisson|cafe|minute maid|tropicana`

// Legacy numeric catalog categories.
var codes = map[string]string{
	"1": "entree", "1.0": "entree",
	"2": "plat", "2.0": "plat",
	"3": "dessert", "3.0": "dessert",
}

type StaticRepository struct {
	family   []category.Rule
	override []category.Rule
	category []category.Rule
}

func NewStaticRepository() *StaticRepository {
	return &StaticRepository{
		family:   familyRules(),
		override: overrideRules(),
		category: categoryRules(),
	}
}

func (r *StaticRepository) FamilyRules() []category.Rule { return r.family }
func (r *StaticRepository) OverrideRules() []category.Rule { return r.override }
func (r *StaticRepository) CategoryRules() []category.Rule { return r.category }

func contains(sub string) func(category.Subject) bool {
	return func(s category.Subject) bool { return strings.Contains(s.Name, sub) }
}

func familyRules() []category.Rule {
	name := func(s category.Subject) string { return strings.TrimSpace(s.Name) }
	plus := regexp.MustCompile(`2 \+ 1`)

	return []category.Rule{
		{Name: "offer", Match: category.NameMatches(`offert|offre|1.*achete`), Label: category.Const("offre")},
		{Name: "beverage", Match: category.NameMatches(`\b(pepsi max|pepsi|ice tea peche)\b`), Label: name},
		{Name: "muffin", Match: contains("muffin"), Label: category.Const("dessert muffin")},
		{Name: "cookie", Match: contains("cookie"), Label: category.Const("dessert cookie")},
		{Name: "brownie", Match: contains("brownie"), Label: category.Const("dessert brownie")},
		{Name: "yogurt", Match: category.NameMatches(`sojasun|yaourt`), Label: category.Const("dessert yaourt")},
		{Name: "cake", Match: category.NameMatches(`frangipane|galette|gateau|buche`), Label: category.Const("dessert part de cake")},
		{Name: "salad", Match: category.NameMatches(`salade|bowl`), Label: category.Const("trefle salade")},
		{Name: "pork", Match: contains("porc"), Label: category.Const("trefle porc")},
		{Name: "wine", Match: contains("verre de vin rouge"), Label: category.Const("vin")},
		{Name: "cutlery", Match: contains("kit couverts inox"), Label: category.Const("kit couverts")},
		{Name: "bread", Match: category.NameMatches(`pain individuel|petit pain|pain de la veille`), Label: category.Const("pain")},
		{Name: "polar bread", Match: contains("pain polaire"), Label: category.Const("snack")},
		{Name: "anti-gaspi", Match: contains("anti-gaspi"), Label: category.Const("anti-gaspi")},
		{Name: "kraft bag", Match: contains("sac kraft"), Label: category.Const("autre")},
		{Name: "snack", Match: category.NameMatches(`pizza|focaccia|petites faims`), Label: category.Const("snack")},
		{Name: "menu", Match: func(s category.Subject) bool {
			return strings.Contains(s.Name, "menu") || (strings.Contains(s.Name, "+") && !plus.MatchString(s.Name))
		}, Label: category.Const("menu")},
		{Name: "account", Match: contains("compte"), Label: category.Const("produit compte")},
		{Name: "fallback", Match: func(category.Subject) bool { return true }, Label: func(s category.Subject) string { return s.Display }},
	}
}

func overrideRules() []category.Rule {
	gaspi := category.ProductMatches(`gaspi`)
	plat := category.ProductMatches(`plat`)
	dessert := category.ProductMatches(`dessert`)

	return []category.Rule{
		{Name: "anti-gaspi plat", Match: func(s category.Subject) bool { return gaspi(s) && plat(s) }, Label: category.Const("plat")},
		{Name: "anti-gaspi dessert", Match: func(s category.Subject) bool { return gaspi(s) && dessert(s) }, Label: category.Const("dessert")},
		{Name: "anti-gaspi other", Match: gaspi, Label: category.Const("anti-gaspi autre")},
	}
}

func categoryRules() []category.Rule {
	family := func(f string) func(category.Subject) bool {
		return func(s category.Subject) bool { return s.Family == f }
	}
	drink := regexp.MustCompile(Beverage)

	return []category.Rule{
		{Name: "thermo pot", Match: family("dessert gourmand pot transparent thermo"), Label: category.Const("dessert")},
		{Name: "anti-gaspi other", Match: family("anti-gaspi autre"), Label: category.Const("autre")},
		{Name: "cutlery", Match: category.FamilyMatches(`kit couverts`), Label: category.Const("kit couverts")},
		{Name: "main", Match: category.FamilyMatches(`salade|bowl|porc|plat`), Label: category.Const("plat")},
		{Name: "other", Match: category.FamilyMatches(`offre|event|menu|compte|pain|autre`), Label: category.Const("autre")},
		{Name: "snack", Match: category.FamilyMatches(`snack|petite faim`), Label: category.Const("snack")},
		{Name: "dessert", Match: category.FamilyMatches(`fruit|dessert`), Label: category.Const("dessert")},
		{Name: "brownie", Match: category.FamilyMatches(`brownie`), Label: category.Const("dessert brownie")},
		{Name: "cookie", Match: category.FamilyMatches(`cookie`), Label: category.Const("dessert cookie")},
		{Name: "muffin", Match: category.FamilyMatches(`muffin`), Label: category.Const("dessert muffin")},
		{Name: "beverage family", Match: category.FamilyMatches(Beverage), Label: category.Const("boisson")},
		{Name: "code", Match: func(s category.Subject) bool {
			_, ok := codes[s.Code]
			return ok
		}, Label: func(s category.Subject) string { return codes[s.Code] }},
		{Name: "catalog", Match: func(s category.Subject) bool { return s.Code != "" }, Label: func(s category.Subject) string { return s.Code }},
		{Name: "beverage name", Match: func(s category.Subject) bool { return drink.MatchString(s.Name) }, Label: category.Const("boisson")},
	}
}
