package events

import "errors"

// ErrPublish возвращается при ошибке публикации события
var ErrPublish = errors.New("events: failed to publish event")
