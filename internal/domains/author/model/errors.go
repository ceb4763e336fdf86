package model

import (
	"fmt"

	"multimedia-api/internal/shared/apperr"
)

var ErrAuthorNotFound = fmt.Errorf("author %w", apperr.ErrNotFound)
