package importer

// Document is the JSON export shape accepted by the importer.
type Document struct {
	Products []Record `json:"products"`
}

// Record is one product entry from the export file. Everything except the
// name is optional.
type Record struct {
	Name             string         `json:"name"`
	Description      string         `json:"description"`
	ShortDescription string         `json:"short_description"`
	SKU              string         `json:"sku"`
	Price            float64        `json:"price"`
	ManageStock      bool           `json:"manage_stock"`
	StockQuantity    *int           `json:"stock_quantity"`
	Categories       []string       `json:"categories"`
	Images           []string       `json:"images"`
	MetaData         map[string]any `json:"meta_data"`
}

// Product is the target-system representation built from one Record.
type Product struct {
	Name             string
	Description      string
	ShortDescription string
	SKU              string
	Price            float64
	ManageStock      bool
	StockQuantity    *int
	CategoryIDs      []int
	MainImage        string
	GalleryImages    []string
	MetaData         map[string]any
}
