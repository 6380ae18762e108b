package catalog

// ---------------------------------------------------------------------------
// Domain types
// ---------------------------------------------------------------------------

// Agent is one marketplace listing. Agents are immutable value objects:
// they are created by a Source and never mutated afterwards.
type Agent struct {
	ID               string
	Name             string
	Description      string
	Tags             []string
	Category         Category
	Rating           float64 // 0.0–5.0
	ReviewCount      int
	Pricing          Pricing
	IsBestPerforming bool
	IsRecommended    bool
	LogoURL          string // optional
}

// Category is the closed set of marketplace categories.
type Category string

const (
	CategoryProductivity    Category = "productivity"
	CategoryCreative        Category = "creative"
	CategoryBusiness        Category = "business"
	CategoryEducation       Category = "education"
	CategoryHealthcare      Category = "healthcare"
	CategoryFinance         Category = "finance"
	CategoryMarketing       Category = "marketing"
	CategoryEducationDev    Category = "education_dev"
	CategoryCustomerService Category = "customer_service"
	CategoryAnalytics       Category = "analytics"
	CategoryTravel          Category = "travel"
	CategoryEcommerce       Category = "ecommerce"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{
		CategoryProductivity, CategoryCreative, CategoryBusiness,
		CategoryEducation, CategoryHealthcare, CategoryFinance,
		CategoryMarketing, CategoryEducationDev, CategoryCustomerService,
		CategoryAnalytics, CategoryTravel, CategoryEcommerce,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// DisplayName returns the human-readable category label.
func (c Category) DisplayName() string {
	switch c {
	case CategoryProductivity:
		return "Productivity"
	case CategoryCreative:
		return "Creative"
	case CategoryBusiness:
		return "Business"
	case CategoryEducation:
		return "Education"
	case CategoryHealthcare:
		return "Healthcare"
	case CategoryFinance:
		return "Finance"
	case CategoryMarketing:
		return "Marketing"
	case CategoryEducationDev:
		return "Developer Education"
	case CategoryCustomerService:
		return "Customer Service"
	case CategoryAnalytics:
		return "Analytics"
	case CategoryTravel:
		return "Travel"
	case CategoryEcommerce:
		return "E-commerce"
	}
	return string(c)
}

// ---------------------------------------------------------------------------
// Pricing
// ---------------------------------------------------------------------------

// PricingModel discriminates the pricing variants.
type PricingModel string

const (
	PricingFree         PricingModel = "free"
	PricingOneTime      PricingModel = "one_time"
	PricingSubscription PricingModel = "subscription"
)

// Pricing describes how a listing is charged. Amount is in the store
// currency and is meaningful only for the paid models; Period is the
// billing period label for subscriptions (e.g. "month").
type Pricing struct {
	Model  PricingModel
	Amount float64
	Period string
}

// Free returns the free pricing variant.
func Free() Pricing { return Pricing{Model: PricingFree} }

// OneTime returns a one-off purchase price.
func OneTime(amount float64) Pricing {
	return Pricing{Model: PricingOneTime, Amount: amount}
}

// Subscription returns a recurring price per period.
func Subscription(amount float64, period string) Pricing {
	return Pricing{Model: PricingSubscription, Amount: amount, Period: period}
}
