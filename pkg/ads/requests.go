package ads

// Request types mirror upstream parameter names. In update requests a nil
// field is left untouched upstream; only non-nil fields are sent. Fields typed
// any hold structured sub-objects (maps, structs or json.RawMessage) that are
// sent as JSON text.

// CampaignListOptions filters a campaign list.
type CampaignListOptions struct {
	ListOptions

	AccountID       string
	EffectiveStatus []string
}

// CampaignCreateRequest creates a campaign. Status defaults to PAUSED and
// SpecialAdCategories to [NONE].
type CampaignCreateRequest struct {
	AccountID           string
	Name                string
	Objective           string
	Status              *string
	SpecialAdCategories []string
	DailyBudget         *int64
	LifetimeBudget      *int64
	SpendCap            *int64
	BidStrategy         *string
	BuyingType          *string
	StartTime           *string
	StopTime            *string
	PromotedObject      any
}

// CampaignUpdateRequest is a sparse campaign patch.
type CampaignUpdateRequest struct {
	Name                *string
	Status              *string
	SpecialAdCategories []string
	DailyBudget         *int64
	LifetimeBudget      *int64
	SpendCap            *int64
	BidStrategy         *string
	StartTime           *string
	StopTime            *string
}

// AdSetListOptions filters an ad set list.
type AdSetListOptions struct {
	ListOptions

	AccountID       string
	CampaignID      string
	EffectiveStatus []string
}

// AdSetCreateRequest creates an ad set. Status defaults to PAUSED.
type AdSetCreateRequest struct {
	AccountID        string
	CampaignID       string
	Name             string
	Status           *string
	OptimizationGoal string
	BillingEvent     string
	DailyBudget      *int64
	LifetimeBudget   *int64
	BidAmount        *int64
	BidStrategy      *string
	DestinationType  *string
	StartTime        *string
	EndTime          *string
	Targeting        any
	PromotedObject   any
	AttributionSpec  any
}

// AdSetUpdateRequest is a sparse ad set patch.
type AdSetUpdateRequest struct {
	Name             *string
	Status           *string
	OptimizationGoal *string
	DailyBudget      *int64
	LifetimeBudget   *int64
	BidAmount        *int64
	BidStrategy      *string
	StartTime        *string
	EndTime          *string
	Targeting        any
}

// AdListOptions filters an ad list.
type AdListOptions struct {
	ListOptions

	AccountID       string
	CampaignID      string
	AdSetID         string
	EffectiveStatus []string
}

// AdCreateRequest creates an ad. Status defaults to PAUSED.
type AdCreateRequest struct {
	AccountID     string
	AdSetID       string
	Name          string
	CreativeID    string
	Status        *string
	TrackingSpecs any
}

// AdUpdateRequest is a sparse ad patch.
type AdUpdateRequest struct {
	Name       *string
	Status     *string
	CreativeID *string
}

// CreativeCreateRequest creates an ad creative.
type CreativeCreateRequest struct {
	AccountID        string
	Name             string
	Title            *string
	Body             *string
	ImageHash        *string
	ImageURL         *string
	LinkURL          *string
	CallToActionType *string
	ObjectStorySpec  any
	AssetFeedSpec    any
}

// CreativeUpdateRequest is a sparse creative patch. The upstream only allows
// renaming and status changes on existing creatives.
type CreativeUpdateRequest struct {
	Name   *string
	Status *string
}

// ImageUploadRequest uploads raw image bytes.
type ImageUploadRequest struct {
	AccountID string
	Filename  string
	Bytes     []byte
}

// AudienceCreateRequest creates a custom audience.
type AudienceCreateRequest struct {
	AccountID          string
	Name               string
	Subtype            string
	Description        *string
	CustomerFileSource *string
	RetentionDays      *int
	PixelID            *string
	Prefill            *bool
	Rule               any
}

// LookalikeCreateRequest creates a lookalike audience from an origin audience.
type LookalikeCreateRequest struct {
	AccountID        string
	Name             string
	OriginAudienceID string
	Description      *string
	LookalikeSpec    any
}

// AudienceUpdateRequest is a sparse audience patch.
type AudienceUpdateRequest struct {
	Name          *string
	Description   *string
	RetentionDays *int
	Rule          any
}

// PixelCreateRequest creates a pixel.
type PixelCreateRequest struct {
	AccountID string
	Name      string
}

// PixelUpdateRequest is a sparse pixel patch.
type PixelUpdateRequest struct {
	Name                    *string
	EnableAutomaticMatching *bool
	AutomaticMatchingFields []string
}

// CatalogCreateRequest creates a product catalog owned by a business.
type CatalogCreateRequest struct {
	BusinessID string
	Name       string
	Vertical   *string
}

// InsightsRequest queries performance data for an account, campaign, ad set or ad.
// An empty ObjectID reports on the default account.
type InsightsRequest struct {
	ListOptions

	ObjectID         string
	Level            string
	DatePreset       string
	TimeRange        *TimeRange
	TimeIncrement    string
	Breakdowns       []string
	ActionBreakdowns []string
	Filtering        []Filter
}
