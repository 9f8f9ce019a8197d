package spree

import (
	"net/url"
	"strconv"
)

// Product represents a Spree product.
type Product struct {
	ID                 int64   `json:"id"                   yaml:"id"`
	Name               string  `json:"name"                 yaml:"name"`
	Description        string  `json:"description"          yaml:"description"`
	Price              string  `json:"price"                yaml:"price"`
	DisplayPrice       string  `json:"display_price"        yaml:"display_price"`
	AvailableOn        string  `json:"available_on"         yaml:"available_on"`
	Slug               string  `json:"slug"                 yaml:"slug"`
	MetaDescription    string  `json:"meta_description"     yaml:"meta_description"`
	MetaKeywords       string  `json:"meta_keywords"        yaml:"meta_keywords"`
	ShippingCategoryID int64   `json:"shipping_category_id" yaml:"shipping_category_id"`
	TaxonIDs           []int64 `json:"taxon_ids,omitempty"  yaml:"taxon_ids,omitempty"`
	TotalOnHand        int     `json:"total_on_hand"        yaml:"total_on_hand"`
	Master             Variant `json:"master"               yaml:"master"`
}

// Order represents a Spree order.
type Order struct {
	ID              int64  `json:"id"               yaml:"id"`
	Number          string `json:"number"           yaml:"number"`
	State           string `json:"state"            yaml:"state"`
	Email           string `json:"email"            yaml:"email"`
	ItemTotal       string `json:"item_total"       yaml:"item_total"`
	Total           string `json:"total"            yaml:"total"`
	ShipTotal       string `json:"ship_total"       yaml:"ship_total"`
	AdjustmentTotal string `json:"adjustment_total" yaml:"adjustment_total"`
	PaymentState    string `json:"payment_state"    yaml:"payment_state"`
	ShipmentState   string `json:"shipment_state"   yaml:"shipment_state"`
	Currency        string `json:"currency"         yaml:"currency"`
	CompletedAt     string `json:"completed_at"     yaml:"completed_at"`
	CreatedAt       string `json:"created_at"       yaml:"created_at"`
}

// Variant represents a Spree product variant.
type Variant struct {
	ID          int64  `json:"id"           yaml:"id"`
	SKU         string `json:"sku"          yaml:"sku"`
	Price       string `json:"price"        yaml:"price"`
	Weight      string `json:"weight"       yaml:"weight"`
	Height      string `json:"height"       yaml:"height"`
	Width       string `json:"width"        yaml:"width"`
	Depth       string `json:"depth"        yaml:"depth"`
	IsMaster    bool   `json:"is_master"    yaml:"is_master"`
	ProductID   int64  `json:"product_id"   yaml:"product_id"`
	OptionsText string `json:"options_text" yaml:"options_text"`
	InStock     bool   `json:"in_stock"     yaml:"in_stock"`
}

// StockLocation represents a Spree stock location.
type StockLocation struct {
	ID        int64  `json:"id"         yaml:"id"`
	Name      string `json:"name"       yaml:"name"`
	Default   bool   `json:"default"    yaml:"default"`
	Address1  string `json:"address1"   yaml:"address1"`
	Address2  string `json:"address2"   yaml:"address2"`
	City      string `json:"city"       yaml:"city"`
	StateName string `json:"state_name" yaml:"state_name"`
	Zipcode   string `json:"zipcode"    yaml:"zipcode"`
	Phone     string `json:"phone"      yaml:"phone"`
	Active    bool   `json:"active"     yaml:"active"`
}

// StockItem represents inventory of one variant at one stock location.
type StockItem struct {
	ID              int64   `json:"id"                yaml:"id"`
	CountOnHand     int     `json:"count_on_hand"     yaml:"count_on_hand"`
	Backorderable   bool    `json:"backorderable"     yaml:"backorderable"`
	StockLocationID int64   `json:"stock_location_id" yaml:"stock_location_id"`
	Variant         Variant `json:"variant"           yaml:"variant"`
}

// Shipment represents a Spree shipment.
type Shipment struct {
	ID                int64  `json:"id"                  yaml:"id"`
	Number            string `json:"number"              yaml:"number"`
	Tracking          string `json:"tracking"            yaml:"tracking"`
	State             string `json:"state"               yaml:"state"`
	OrderID           string `json:"order_id"            yaml:"order_id"`
	StockLocationName string `json:"stock_location_name" yaml:"stock_location_name"`
	ShippedAt         string `json:"shipped_at"          yaml:"shipped_at"`
}

// PayloadShaper converts a request into the nested-bracket form encoding the
// Spree API expects (e.g. "product[name]=Shirt"). Resource clients depend only
// on this capability; each request type supplies its own shaping.
type PayloadShaper interface {
	Values() url.Values
}

// ProductCreateRequest holds the attributes accepted when creating a product.
// Name is required by the API; optional fields are omitted from the payload
// when nil.
type ProductCreateRequest struct {
	Name               string  `json:"name"                           yaml:"name"`
	Price              *string `json:"price,omitempty"                yaml:"price,omitempty"`
	SKU                *string `json:"sku,omitempty"                  yaml:"sku,omitempty"`
	Description        *string `json:"description,omitempty"          yaml:"description,omitempty"`
	DisplayPrice       *string `json:"display_price,omitempty"        yaml:"display_price,omitempty"`
	AvailableOn        *string `json:"available_on,omitempty"         yaml:"available_on,omitempty"`
	MetaDescription    *string `json:"meta_description,omitempty"     yaml:"meta_description,omitempty"`
	MetaKeywords       *string `json:"meta_keywords,omitempty"        yaml:"meta_keywords,omitempty"`
	ShippingCategoryID *int64  `json:"shipping_category_id,omitempty" yaml:"shipping_category_id,omitempty"`
	Weight             *string `json:"weight,omitempty"               yaml:"weight,omitempty"`
	Height             *string `json:"height,omitempty"               yaml:"height,omitempty"`
	Width              *string `json:"width,omitempty"                yaml:"width,omitempty"`
	Depth              *string `json:"depth,omitempty"                yaml:"depth,omitempty"`
	CostPrice          *string `json:"cost_price,omitempty"           yaml:"cost_price,omitempty"`
}

// Values implements PayloadShaper.
func (r *ProductCreateRequest) Values() url.Values {
	values := url.Values{}
	values.Set("product[name]", r.Name)

	setOpt(values, "product[price]", r.Price)
	setOpt(values, "product[sku]", r.SKU)
	setOpt(values, "product[description]", r.Description)
	setOpt(values, "product[display_price]", r.DisplayPrice)
	setOpt(values, "product[available_on]", r.AvailableOn)
	setOpt(values, "product[meta_description]", r.MetaDescription)
	setOpt(values, "product[meta_keywords]", r.MetaKeywords)
	setOpt(values, "product[weight]", r.Weight)
	setOpt(values, "product[height]", r.Height)
	setOpt(values, "product[width]", r.Width)
	setOpt(values, "product[depth]", r.Depth)
	setOpt(values, "product[cost_price]", r.CostPrice)

	if r.ShippingCategoryID != nil {
		values.Set("product[shipping_category_id]", strconv.FormatInt(*r.ShippingCategoryID, 10))
	}

	return values
}

// ProductUpdateRequest holds the attributes accepted when updating a product.
// The shaping rules are the same as for creation, except that Name is also
// optional.
type ProductUpdateRequest struct {
	Name               *string `json:"name,omitempty"                 yaml:"name,omitempty"`
	Price              *string `json:"price,omitempty"                yaml:"price,omitempty"`
	SKU                *string `json:"sku,omitempty"                  yaml:"sku,omitempty"`
	Description        *string `json:"description,omitempty"          yaml:"description,omitempty"`
	DisplayPrice       *string `json:"display_price,omitempty"        yaml:"display_price,omitempty"`
	AvailableOn        *string `json:"available_on,omitempty"         yaml:"available_on,omitempty"`
	MetaDescription    *string `json:"meta_description,omitempty"     yaml:"meta_description,omitempty"`
	MetaKeywords       *string `json:"meta_keywords,omitempty"        yaml:"meta_keywords,omitempty"`
	ShippingCategoryID *int64  `json:"shipping_category_id,omitempty" yaml:"shipping_category_id,omitempty"`
	Weight             *string `json:"weight,omitempty"               yaml:"weight,omitempty"`
	Height             *string `json:"height,omitempty"               yaml:"height,omitempty"`
	Width              *string `json:"width,omitempty"                yaml:"width,omitempty"`
	Depth              *string `json:"depth,omitempty"                yaml:"depth,omitempty"`
	CostPrice          *string `json:"cost_price,omitempty"           yaml:"cost_price,omitempty"`
}

// Values implements PayloadShaper.
func (r *ProductUpdateRequest) Values() url.Values {
	values := url.Values{}

	setOpt(values, "product[name]", r.Name)
	setOpt(values, "product[price]", r.Price)
	setOpt(values, "product[sku]", r.SKU)
	setOpt(values, "product[description]", r.Description)
	setOpt(values, "product[display_price]", r.DisplayPrice)
	setOpt(values, "product[available_on]", r.AvailableOn)
	setOpt(values, "product[meta_description]", r.MetaDescription)
	setOpt(values, "product[meta_keywords]", r.MetaKeywords)
	setOpt(values, "product[weight]", r.Weight)
	setOpt(values, "product[height]", r.Height)
	setOpt(values, "product[width]", r.Width)
	setOpt(values, "product[depth]", r.Depth)
	setOpt(values, "product[cost_price]", r.CostPrice)

	if r.ShippingCategoryID != nil {
		values.Set("product[shipping_category_id]", strconv.FormatInt(*r.ShippingCategoryID, 10))
	}

	return values
}

// StockItemUpdateRequest holds the attributes accepted when adjusting a stock
// item. Force tells Spree to set the absolute count rather than applying a
// delta.
type StockItemUpdateRequest struct {
	CountOnHand *int  `json:"count_on_hand,omitempty" yaml:"count_on_hand,omitempty"`
	Force       *bool `json:"force,omitempty"         yaml:"force,omitempty"`
}

// Values implements PayloadShaper.
func (r *StockItemUpdateRequest) Values() url.Values {
	values := url.Values{}

	if r.CountOnHand != nil {
		values.Set("stock_item[count_on_hand]", strconv.Itoa(*r.CountOnHand))
	}

	if r.Force != nil {
		values.Set("stock_item[force]", strconv.FormatBool(*r.Force))
	}

	return values
}

// ShipmentUpdateRequest holds the attributes accepted when updating a
// shipment or transitioning it through ready/ship.
type ShipmentUpdateRequest struct {
	Tracking *string `json:"tracking,omitempty" yaml:"tracking,omitempty"`
	Number   *string `json:"number,omitempty"   yaml:"number,omitempty"`
}

// Values implements PayloadShaper. A nil receiver yields an empty payload, so
// shipment transitions can be issued without attributes.
func (r *ShipmentUpdateRequest) Values() url.Values {
	values := url.Values{}

	if r == nil {
		return values
	}

	setOpt(values, "shipment[tracking]", r.Tracking)
	setOpt(values, "shipment[number]", r.Number)

	return values
}

// ShipmentItemRequest identifies a variant and quantity for the shipment
// add/remove actions.
type ShipmentItemRequest struct {
	VariantID int64 `json:"variant_id" yaml:"variant_id"`
	Quantity  int   `json:"quantity"   yaml:"quantity"`
}

// Values implements PayloadShaper.
func (r *ShipmentItemRequest) Values() url.Values {
	values := url.Values{}
	values.Set("variant_id", strconv.FormatInt(r.VariantID, 10))
	values.Set("quantity", strconv.Itoa(r.Quantity))

	return values
}

func setOpt(values url.Values, key string, value *string) {
	if value != nil {
		values.Set(key, *value)
	}
}

// String is a helper that returns a pointer to the given string, for use in
// request literals.
func String(s string) *string {
	return &s
}

// Int is a helper that returns a pointer to the given int.
func Int(i int) *int {
	return &i
}

// Int64 is a helper that returns a pointer to the given int64.
func Int64(i int64) *int64 {
	return &i
}

// Bool is a helper that returns a pointer to the given bool.
func Bool(b bool) *bool {
	return &b
}
