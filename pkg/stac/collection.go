package stac

// Collection groups the items generated for one country.
type Collection struct {
	Type        string `json:"type" validate:"required,eq=Collection"`
	ID          string `json:"id" validate:"required"`
	StacVersion string `json:"stac_version" validate:"required"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description" validate:"required"`
	License     string `json:"license" validate:"required"`
	Extent      Extent `json:"extent"`
	Links       []Link `json:"links" validate:"dive"`
}

// NewCollection creates an empty collection with the given identity and extent.
func NewCollection(id, title, description, license string, extent Extent) *Collection {
	return &Collection{
		Type:        TypeCollection,
		ID:          id,
		StacVersion: Version,
		Title:       title,
		Description: description,
		License:     license,
		Extent:      extent,
		Links:       []Link{},
	}
}

// AddItem records an item link on the collection.
func (c *Collection) AddItem(href, title string) {
	c.Links = append(c.Links, Link{
		Rel:   RelItem,
		Href:  href,
		Type:  MediaTypeJSON,
		Title: title,
	})
}

// Validate checks the collection against STAC structural requirements.
func (c *Collection) Validate() error {
	return validate.Struct(c)
}
