// Package ads provides types, interfaces, and helpers for working with the
// Meta Marketing (Graph) API.
//
// # Overview
//
// The ads package defines the domain types (AdAccount, Campaign, AdSet, Ad,
// Creative, Audience, Pixel, Catalog, InsightsRecord), the request types used
// to create and update them, and the interfaces for entity clients (e.g.,
// CampaignsClient, AdSetsClient). A concrete implementation is provided by the
// adsclient package, which wires credentials, transport and error
// classification. Most consumers import adsclient to construct a client and
// then use the entity client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/metaads-client/pkg/ads"
//	  "github.com/fivetwenty-io/metaads-client/pkg/adsclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := adsclient.NewWithToken(token, "act_123")
//	  if err != nil { log.Fatal(err) }
//
//	  campaigns, err := cli.Campaigns().List(ctx, &ads.CampaignListOptions{})
//	  if err != nil { log.Fatal(err) }
//	  _ = campaigns
//	}
//
// # Credentials
//
// Every client is bound to one Credentials value. Clients are cheap and are
// meant to be built per inbound call; nothing is shared between callers.
//
// # Pagination
//
// List operations return a ListResponse. Pass NextCursor back as
// ListOptions.After to fetch the following page. Cursors are opaque.
//
// # Errors
//
// Upstream failures are returned as *Error, whose Kind is one of generic,
// rate_limit, authentication, permission, not_found or validation. Use AsError
// and the Is* helpers to branch on them, and IsRetryable to decide whether a
// retry makes sense. Failures before any HTTP status wrap ErrTransport.
//
// # Interceptors
//
// An InterceptorChain runs hooks before and after every request. Logging,
// header and metrics interceptors are provided.
package ads
