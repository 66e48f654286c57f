package catalog

// ProductStatus is the publication state of a product.
type ProductStatus string

const (
	ProductActive   ProductStatus = "active"
	ProductInactive ProductStatus = "inactive"
	ProductDraft    ProductStatus = "draft"
	ProductArchived ProductStatus = "archived"
)

// ProductStatuses lists the status buckets reported by product stats.
var ProductStatuses = []string{
	string(ProductActive), string(ProductInactive), string(ProductDraft), string(ProductArchived),
}

// DefaultCurrency is applied to products created without one.
const DefaultCurrency = "USD"

// Product is a catalog item. Empty optional fields are omitted from both JSON and the stored item.
type Product struct {
	ID          string        `json:"id" dynamodbav:"id"`
	Name        string        `json:"name" dynamodbav:"name"`
	Description string        `json:"description,omitempty" dynamodbav:"description,omitempty"`
	Category    string        `json:"category,omitempty" dynamodbav:"category,omitempty"`
	Price       float64       `json:"price,omitempty" dynamodbav:"price,omitempty"`
	Currency    string        `json:"currency,omitempty" dynamodbav:"currency,omitempty"`
	Status      ProductStatus `json:"status,omitempty" dynamodbav:"status,omitempty"`
	Tags        []string      `json:"tags,omitempty" dynamodbav:"tags,omitempty"`
	SKU         string        `json:"sku,omitempty" dynamodbav:"sku,omitempty"`
	CreatedAt   string        `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt   string        `json:"updatedAt" dynamodbav:"updatedAt"`
}

// ProductPatch is a partial update. Nil fields are left untouched.
type ProductPatch struct {
	Name        *string   `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	Category    *string   `json:"category,omitempty" validate:"omitempty,max=100"`
	Price       *float64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	Currency    *string   `json:"currency,omitempty" validate:"omitempty,len=3"`
	Status      *string   `json:"status,omitempty" validate:"omitempty,oneof=active inactive draft archived"`
	Tags        *[]string `json:"tags,omitempty"`
	SKU         *string   `json:"sku,omitempty" validate:"omitempty,max=64"`
}

// Fields returns the stored attributes the patch sets.
func (p ProductPatch) Fields() map[string]interface{} {
	f := map[string]interface{}{}
	setString(f, "name", p.Name)
	setString(f, "description", p.Description)
	setString(f, "category", p.Category)
	if p.Price != nil {
		f["price"] = *p.Price
	}
	setString(f, "currency", p.Currency)
	setString(f, "status", p.Status)
	if p.Tags != nil {
		f["tags"] = *p.Tags
	}
	setString(f, "sku", p.SKU)
	return f
}

func setString(f map[string]interface{}, key string, v *string) {
	if v != nil {
		f[key] = *v
	}
}
