package response

import (
	"cashdrawer-api/internal/domain/money"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Amounts leave the service as fixed two-decimal strings.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
		{
			SrcType: (*uuid.UUID)(nil),
			DstType: (*string)(nil),
			Fn: func(src any) (any, error) {
				id := src.(*uuid.UUID)
				if id == nil {
					return nil, nil
				}
				s := id.String()
				return &s, nil
			},
		},
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(decimal.Decimal).StringFixed(money.Scale), nil
			},
		},
		{
			SrcType: (*decimal.Decimal)(nil),
			DstType: (*string)(nil),
			Fn: func(src any) (any, error) {
				d := src.(*decimal.Decimal)
				if d == nil {
					return nil, nil
				}
				s := d.StringFixed(money.Scale)
				return &s, nil
			},
		},
	},
}

func copyView[T any, V any](view *V) (*T, error) {
	out := new(T)
	if err := copier.CopyWithOption(out, view, copyOption); err != nil {
		return nil, err
	}
	return out, nil
}

func copyViews[T any, V any](views []*V) ([]*T, error) {
	out := make([]*T, 0, len(views))
	for _, v := range views {
		item, err := copyView[T](v)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
