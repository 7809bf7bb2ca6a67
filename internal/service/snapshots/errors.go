package snapshots

import (
	"errors"

	"github.com/m04kA/SMC-VenueBookingService/pkg/lastfetch"
)

var (
	// ErrStaleFetchDiscarded загрузка вытеснена более новой по тому же каналу
	ErrStaleFetchDiscarded = lastfetch.ErrStaleFetchDiscarded

	// ErrInternal возвращается при ошибках репозитория
	ErrInternal = errors.New("snapshots: internal error")
)
