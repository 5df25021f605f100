package screens

import (
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/backend"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/currency"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/forms"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/pkg/view"
)

func commerceScreens(cur *currency.Store) []Screen {
	productFields := []forms.Field{
		{Name: "productName", Label: "Product Name", Kind: forms.Text, Required: true},
		{Name: "description", Label: "Description", Kind: forms.Textarea},
		{Name: "price", Label: "Price", Kind: forms.Number, Required: true, Validate: positive("Price")},
		{Name: "quantity", Label: "Quantity", Kind: forms.Number, Required: true, Validate: positive("Quantity")},
		{Name: "category", Label: "Category", Kind: forms.Select, Required: true},
		{Name: "images", Label: "Images", Kind: forms.FileMultiple, Required: true},
		{Name: "isOutOfStock", Label: "Out Of Stock", Kind: forms.Switch},
	}

	sellerFields := []forms.Field{
		{Name: "businessName", Label: "Business Name", Kind: forms.Text, Required: true},
		{Name: "name", Label: "Owner Name", Kind: forms.Text, Required: true},
		{Name: "email", Label: "Email", Kind: forms.Text, Required: true},
		{Name: "mobileNumber", Label: "Mobile Number", Kind: forms.Number},
		{Name: "address", Label: "Address", Kind: forms.Textarea},
		{Name: "image", Label: "Profile Image", Kind: forms.File},
	}

	fakeSellerFields := append([]forms.Field{
		{Name: "password", Label: "Password", Kind: forms.Password, Required: true},
	}, sellerFields...)

	sellerRow := func(rec view.Record, abs, _ int) view.Row {
		return view.Row{
			ID: rec.ID(),
			Cells: []string{
				view.IndexCell(abs),
				rec.Str("businessName"),
				rec.Str("name"),
				rec.Str("email"),
				rec.Str("mobileNumber"),
				view.YesNo(!rec.Bool("isBlock")),
				view.DateCell(rec, "createdAt"),
			},
		}
	}
	sellerHeaders := []string{"No", "Business", "Owner", "Email", "Mobile", "Active", "Joined"}

	return []Screen{
		{
			Slug:     "products",
			Title:    "Products",
			Resource: backend.Resource{Name: "product", BasePath: "/admin/product"},
			AltKey:   "products",
			Headers:  []string{"No", "Name", "Price", "Stock", "Category", "Created"},
			Fields:   productFields,
			Row: func(rec view.Record, abs, _ int) view.Row {
				return view.Row{
					ID: rec.ID(),
					Cells: []string{
						view.IndexCell(abs),
						rec.Str("productName"),
						cur.Format(rec.Float("price")),
						rec.Str("quantity"),
						rec.Str("category"),
						view.DateCell(rec, "createdAt"),
					},
				}
			},
		},
		{
			Slug:     "real-sellers",
			Title:    "Real Sellers",
			Resource: backend.Resource{Name: "seller", BasePath: "/admin/seller"},
			AltKey:   "sellers",
			RoleType: "real",
			Headers:  sellerHeaders,
			Fields:   sellerFields,
			Row:      sellerRow,
		},
		{
			Slug:     "fake-sellers",
			Title:    "Fake Sellers",
			Resource: backend.Resource{Name: "seller", BasePath: "/admin/seller"},
			AltKey:   "sellers",
			RoleType: "fake",
			Headers:  sellerHeaders,
			Fields:   fakeSellerFields,
			Row:      sellerRow,
		},
	}
}
