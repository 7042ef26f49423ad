package http

import (
	"github.com/pampered-pooch/site-api/internal/application/contact"
	"github.com/pampered-pooch/site-api/internal/application/review"
	"github.com/pampered-pooch/site-api/internal/application/sitecontent"
)

// Deps holds the application services the router exposes. They are built in
// main so their startup lifecycle (cache priming, backend selection) stays
// out of the transport layer.
type Deps struct {
	Contact     contact.Service
	Reviews     *review.Service
	SiteContent *sitecontent.Service
}
