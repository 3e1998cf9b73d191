// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Volkova

// Package links derives hypermedia "next action" links for API resources.
//
// The mapping from resource kind to its link set is a static table of
// (relation, path template, method) triples. Templates are instantiated
// by substituting the resource identifiers, so the output for equal
// inputs is identical and links appear in declaration order.
//
// The provider is a pure read-only transform: it never fails for
// well-formed input and never mutates the entity it annotates — it
// returns an augmented copy.
package links

import (
	"fmt"
	"net/http"

	"github.com/avolkova/gift-certificates/models"
)

// linkTemplate is one row of the static link table: a relation name,
// a fmt path template over the resource identifiers, and the HTTP method
// of the follow-up action.
type linkTemplate struct {
	rel      string
	template string
	method   string
}

// Link tables per resource kind. Output order is declaration order.
var (
	certificateLinks = []linkTemplate{
		{rel: "self", template: "/certificates/%d", method: http.MethodGet},
		{rel: "update", template: "/certificates/%d", method: http.MethodPatch},
		{rel: "delete", template: "/certificates/%d", method: http.MethodDelete},
		{rel: "purchase", template: "/certificates/%d/purchase", method: http.MethodPost},
	}

	userLinks = []linkTemplate{
		{rel: "self", template: "/users/%d", method: http.MethodGet},
		{rel: "orders", template: "/users/%d/orders", method: http.MethodGet},
	}

	orderLinks = []linkTemplate{
		{rel: "self", template: "/users/%d/orders/%d", method: http.MethodGet},
		{rel: "user", template: "/users/%d", method: http.MethodGet},
		{rel: "certificate", template: "/certificates/%d", method: http.MethodGet},
	}
)

// Provider instantiates the static link tables for concrete resources.
// A single immutable Provider is shared by all services; it holds no
// per-request state.
type Provider struct{}

// NewProvider constructs a link [Provider].
func NewProvider() *Provider {
	return &Provider{}
}

// Certificate returns a copy of c with its hypermedia links attached.
func (p *Provider) Certificate(c models.Certificate) models.Certificate {
	c.Links = instantiate(certificateLinks, c.ID)
	return c
}

// User returns a copy of u with its hypermedia links attached.
func (p *Provider) User(u models.User) models.User {
	u.Links = instantiate(userLinks, u.ID)
	return u
}

// Order returns a copy of o with its hypermedia links attached.
// The "self" relation addresses the order under its owning user, the
// "user" and "certificate" relations point at the referenced entities.
func (p *Provider) Order(o models.Order) models.Order {
	o.Links = []models.Link{
		{Rel: orderLinks[0].rel, Href: fmt.Sprintf(orderLinks[0].template, o.UserID, o.ID), Method: orderLinks[0].method},
		{Rel: orderLinks[1].rel, Href: fmt.Sprintf(orderLinks[1].template, o.UserID), Method: orderLinks[1].method},
		{Rel: orderLinks[2].rel, Href: fmt.Sprintf(orderLinks[2].template, o.CertificateID), Method: orderLinks[2].method},
	}
	return o
}

func instantiate(table []linkTemplate, id int64) []models.Link {
	result := make([]models.Link, 0, len(table))
	for _, lt := range table {
		result = append(result, models.Link{
			Rel:    lt.rel,
			Href:   fmt.Sprintf(lt.template, id),
			Method: lt.method,
		})
	}

	return result
}
