package wishlist

import "vinyl-record-house/internal/pkg/errs"

var ErrNotInWishlist = errs.New("record is not in the wishlist")
