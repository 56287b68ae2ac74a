package stac

// Standard STAC link relation types.
const (
	RelRoot       = "root"
	RelParent     = "parent"
	RelChild      = "child"
	RelItem       = "item"
	RelSelf       = "self"
	RelCollection = "collection"
)

// Link connects a STAC document to a related document.
type Link struct {
	Rel   string `json:"rel" validate:"required"`
	Href  string `json:"href" validate:"required"`
	Type  string `json:"type,omitempty"`
	Title string `json:"title,omitempty"`
}

// FindLink returns the first link with the given relation, or nil.
func FindLink(links []Link, rel string) *Link {
	for i := range links {
		if links[i].Rel == rel {
			return &links[i]
		}
	}
	return nil
}
