package settings

import "errors"

var (
	ErrSettingNotFound = errors.New("setting not found")
	ErrUnknownKey      = errors.New("unknown setting key")
)
