package cart

import "vinyl-record-house/internal/pkg/errs"

var ErrItemNotInCart = errs.New("record is not in the cart")
