// Package adsclient provides the primary entry point for constructing a
// Graph API advertising client that implements the ads.Client interface.
//
// A client is bound to one set of credentials. Build one per inbound call and
// let it go out of scope afterwards; it holds no state between calls.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//	  "os"
//
//	  "github.com/fivetwenty-io/metaads-client/pkg/ads"
//	  "github.com/fivetwenty-io/metaads-client/pkg/adsclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Token and default account from the environment.
//	  cli, err := adsclient.New(&ads.Config{
//	    Credentials: adsclient.CredentialsFromEnv(os.Getenv),
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Or straight from a token you already have:
//	  cli, err = adsclient.NewWithToken("EAAB...", "act_1234")
//	  if err != nil { log.Fatal(err) }
//
//	  campaigns, err := cli.Campaigns().List(ctx, &ads.CampaignListOptions{
//	    ListOptions: ads.ListOptions{Limit: 10},
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = campaigns
//	}
//
// # Endpoint normalization
//
// New trims trailing slashes and a trailing version segment from BaseURL and
// adds https:// when no scheme is given. A bare API version such as "22.0" is
// prefixed with "v".
//
// # Credentials
//
// CredentialsFromEnv reads META_ACCESS_TOKEN, META_ACCOUNT_ID, META_BUSINESS_ID,
// META_APP_ID, META_APP_SECRET and META_API_VERSION. CredentialsFromHeader reads
// a bearer Authorization header and the X-Meta-* headers of an inbound request.
package adsclient
