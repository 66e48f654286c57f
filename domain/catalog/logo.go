package catalog

// LogoVariant is the layout of a logo file.
type LogoVariant string

const (
	VariantPrimary    LogoVariant = "primary"
	VariantSecondary  LogoVariant = "secondary"
	VariantIcon       LogoVariant = "icon"
	VariantMonochrome LogoVariant = "monochrome"
	VariantHorizontal LogoVariant = "horizontal"
	VariantVertical   LogoVariant = "vertical"
)

// LogoStatus is the lifecycle state of a logo.
type LogoStatus string

const (
	LogoActive   LogoStatus = "active"
	LogoInactive LogoStatus = "inactive"
	LogoArchived LogoStatus = "archived"
)

// LogoStatuses lists the status buckets reported by logo stats.
var LogoStatuses = []string{string(LogoActive), string(LogoInactive), string(LogoArchived)}

// Logo is a brand asset owned by a client. At most one logo per client should be primary.
type Logo struct {
	ID        string      `json:"id" dynamodbav:"id"`
	ClientID  string      `json:"clientId" dynamodbav:"clientId"`
	Variant   LogoVariant `json:"variant" dynamodbav:"variant"`
	Brand     string      `json:"brand,omitempty" dynamodbav:"brand,omitempty"`
	Version   string      `json:"version,omitempty" dynamodbav:"version,omitempty"`
	FileURL   string      `json:"fileUrl" dynamodbav:"fileUrl"`
	FileType  string      `json:"fileType,omitempty" dynamodbav:"fileType,omitempty"`
	FileSize  int64       `json:"fileSize,omitempty" dynamodbav:"fileSize,omitempty"`
	IsPrimary bool        `json:"isPrimary" dynamodbav:"isPrimary"`
	Status    LogoStatus  `json:"status" dynamodbav:"status"`
	CreatedAt string      `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt string      `json:"updatedAt" dynamodbav:"updatedAt"`
}

// LogoPatch is a partial update. Primary status changes go through SetPrimary instead.
type LogoPatch struct {
	Variant  *string `json:"variant,omitempty" validate:"omitempty,oneof=primary secondary icon monochrome horizontal vertical"`
	Brand    *string `json:"brand,omitempty" validate:"omitempty,max=200"`
	Version  *string `json:"version,omitempty" validate:"omitempty,max=40"`
	FileURL  *string `json:"fileUrl,omitempty" validate:"omitempty,url"`
	FileType *string `json:"fileType,omitempty" validate:"omitempty,max=40"`
	FileSize *int64  `json:"fileSize,omitempty" validate:"omitempty,gte=0"`
	Status   *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive archived"`
}

// Fields returns the stored attributes the patch sets.
func (p LogoPatch) Fields() map[string]interface{} {
	f := map[string]interface{}{}
	setString(f, "variant", p.Variant)
	setString(f, "brand", p.Brand)
	setString(f, "version", p.Version)
	setString(f, "fileUrl", p.FileURL)
	setString(f, "fileType", p.FileType)
	if p.FileSize != nil {
		f["fileSize"] = *p.FileSize
	}
	setString(f, "status", p.Status)
	return f
}
