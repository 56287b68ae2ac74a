package stac

// Catalog is the root STAC document grouping the generated collections.
type Catalog struct {
	Type        string `json:"type" validate:"required,eq=Catalog"`
	ID          string `json:"id" validate:"required"`
	StacVersion string `json:"stac_version" validate:"required"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description" validate:"required"`
	Links       []Link `json:"links" validate:"dive"`
}

// NewCatalog creates an empty root catalog with the given identity.
func NewCatalog(id, title, description string) *Catalog {
	return &Catalog{
		Type:        TypeCatalog,
		ID:          id,
		StacVersion: Version,
		Title:       title,
		Description: description,
		Links:       []Link{},
	}
}

// AddChild records a child collection link on the catalog.
func (c *Catalog) AddChild(href, title string) {
	c.Links = append(c.Links, Link{
		Rel:   RelChild,
		Href:  href,
		Type:  MediaTypeJSON,
		Title: title,
	})
}

// Validate checks the catalog against STAC structural requirements.
func (c *Catalog) Validate() error {
	return validate.Struct(c)
}
