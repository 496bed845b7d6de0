package assets

import "errors"

// Sentinel errors for template loading.
var (
	ErrTemplateNotFound       = errors.New("template not found")
	ErrTemplateMissingContent = errors.New("template has no {{ Content }} placeholder")
	ErrInvalidAssetName       = errors.New("invalid asset name") // separators, dots or empty
	ErrInvalidBasePath        = errors.New("invalid base path")
	ErrAssetRead              = errors.New("failed to read asset") // I/O, size limit, or escape from the templates dir
)
