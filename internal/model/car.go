package model

// Car is one entry of the showroom catalog. Values are display-ready:
// Price is already formatted and image fields are opaque asset handles.
type Car struct {
	Name         string   `json:"name" yaml:"name"`
	Price        string   `json:"price" yaml:"price"`
	Features     []string `json:"features" yaml:"features"`
	Icon         string   `json:"icon" yaml:"icon"`
	DetailImages []string `json:"detail_images" yaml:"detail_images"`
}

// RenderRequest is everything a host needs to draw one row.
// Image is empty while the row is collapsed.
type RenderRequest struct {
	Name       string
	Price      string
	Features   []string
	Icon       string
	Expanded   bool
	Image      string
	ImageIndex int
	ImageCount int
}
