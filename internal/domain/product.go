package domain

// Product is a catalog item. Brand+Model is unique; EAN is not, since
// product variants may share one barcode.
type Product struct {
	ID                  int64
	Brand               string
	Model               string
	Description         string
	Stock               int
	StockUnderControl   bool
	DistributionCompany string
	EAN                 string
}
