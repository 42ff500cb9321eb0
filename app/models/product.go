package models

// Product is one catalog record. Values are copies; changing one does not
// touch the stored row.
type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name        string  `gorm:"size:255;not null"         json:"name"`
	Description string  `gorm:"type:text"                 json:"description"`
	Price       float64 `gorm:"not null"                  json:"price"`
	Category    string  `gorm:"size:100"                  json:"category"`
	ImgURL      string  `gorm:"column:imgUrl;type:text"   json:"imgUrl"`
	Stock       int     `gorm:"not null"                  json:"stock"`
	Brand       string  `gorm:"size:100"                  json:"brand"`
}

// TableName keeps the entity's own name for the table.
func (Product) TableName() string { return "product" }

// Fields returns the seven writable fields of p.
func (p Product) Fields() ProductFields {
	return ProductFields{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		ImgURL:      p.ImgURL,
		Stock:       p.Stock,
		Brand:       p.Brand,
	}
}

// ProductFields is a full field set without identity, used for insert and
// replace.
type ProductFields struct {
	Name        string
	Description string
	Price       float64
	Category    string
	ImgURL      string
	Stock       int
	Brand       string
}

// Record attaches id to f.
func (f ProductFields) Record(id uint) Product {
	return Product{
		ID:          id,
		Name:        f.Name,
		Description: f.Description,
		Price:       f.Price,
		Category:    f.Category,
		ImgURL:      f.ImgURL,
		Stock:       f.Stock,
		Brand:       f.Brand,
	}
}

// ProductInput is the JSON body of create and update requests. Pointers
// distinguish a missing price or stock from an explicit zero.
type ProductInput struct {
	Name        string   `json:"name"        validate:"required,max=255"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"       validate:"required"`
	Category    string   `json:"category"    validate:"max=100"`
	ImgURL      string   `json:"imgUrl"`
	Stock       *int     `json:"stock"       validate:"required"`
	Brand       string   `json:"brand"       validate:"max=100"`
}

// Fields converts a validated input. Missing price or stock become zero.
func (in ProductInput) Fields() ProductFields {
	f := ProductFields{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		ImgURL:      in.ImgURL,
		Brand:       in.Brand,
	}
	if in.Price != nil {
		f.Price = *in.Price
	}
	if in.Stock != nil {
		f.Stock = *in.Stock
	}
	return f
}
