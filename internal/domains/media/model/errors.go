package model

import (
	"fmt"

	"multimedia-api/internal/shared/apperr"
)

var ErrItemNotFound = fmt.Errorf("item %w", apperr.ErrNotFound)
