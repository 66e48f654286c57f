package catalog

// ProviderStatus is the onboarding state of a provider.
type ProviderStatus string

const (
	ProviderActive   ProviderStatus = "active"
	ProviderInactive ProviderStatus = "inactive"
	ProviderPending  ProviderStatus = "pending"
)

// ProviderStatuses lists the status buckets reported by provider stats.
var ProviderStatuses = []string{string(ProviderActive), string(ProviderInactive), string(ProviderPending)}

// Provider is a supplier company in the catalog.
type Provider struct {
	ID        string         `json:"id" dynamodbav:"id"`
	Name      string         `json:"name" dynamodbav:"name"`
	Company   string         `json:"company,omitempty" dynamodbav:"company,omitempty"`
	Industry  string         `json:"industry,omitempty" dynamodbav:"industry,omitempty"`
	Email     string         `json:"email,omitempty" dynamodbav:"email,omitempty"`
	Phone     string         `json:"phone,omitempty" dynamodbav:"phone,omitempty"`
	Website   string         `json:"website,omitempty" dynamodbav:"website,omitempty"`
	Tags      []string       `json:"tags,omitempty" dynamodbav:"tags,omitempty"`
	Status    ProviderStatus `json:"status,omitempty" dynamodbav:"status,omitempty"`
	CreatedAt string         `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt string         `json:"updatedAt" dynamodbav:"updatedAt"`
}

// ProviderPatch is a partial update. Nil fields are left untouched.
type ProviderPatch struct {
	Name     *string   `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Company  *string   `json:"company,omitempty" validate:"omitempty,max=200"`
	Industry *string   `json:"industry,omitempty" validate:"omitempty,max=100"`
	Email    *string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string   `json:"phone,omitempty" validate:"omitempty,max=40"`
	Website  *string   `json:"website,omitempty" validate:"omitempty,url"`
	Tags     *[]string `json:"tags,omitempty"`
	Status   *string   `json:"status,omitempty" validate:"omitempty,oneof=active inactive pending"`
}

// Fields returns the stored attributes the patch sets.
func (p ProviderPatch) Fields() map[string]interface{} {
	f := map[string]interface{}{}
	setString(f, "name", p.Name)
	setString(f, "company", p.Company)
	setString(f, "industry", p.Industry)
	setString(f, "email", p.Email)
	setString(f, "phone", p.Phone)
	setString(f, "website", p.Website)
	if p.Tags != nil {
		f["tags"] = *p.Tags
	}
	setString(f, "status", p.Status)
	return f
}
