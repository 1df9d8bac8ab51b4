package ads

import "encoding/json"

// IDResponse is returned by create calls.
type IDResponse struct {
	ID string `json:"id"`
}

// SuccessResponse is returned by update and delete calls.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// Ref is a reference to a related object.
type Ref struct {
	ID   string `json:"id"             yaml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// AdAccount represents an ad account.
type AdAccount struct {
	ID            string     `json:"id"                      yaml:"id"`
	AccountID     string     `json:"account_id,omitempty"    yaml:"account_id,omitempty"`
	Name          string     `json:"name,omitempty"          yaml:"name,omitempty"`
	AccountStatus int        `json:"account_status,omitempty" yaml:"account_status,omitempty"`
	Currency      string     `json:"currency,omitempty"      yaml:"currency,omitempty"`
	TimezoneName  string     `json:"timezone_name,omitempty" yaml:"timezone_name,omitempty"`
	AmountSpent   MinorUnits `json:"amount_spent,omitempty"  yaml:"amount_spent,omitempty"`
	Balance       MinorUnits `json:"balance,omitempty"       yaml:"balance,omitempty"`
	SpendCap      MinorUnits `json:"spend_cap,omitempty"     yaml:"spend_cap,omitempty"`
	Business      *Ref       `json:"business,omitempty"      yaml:"business,omitempty"`
}

// Business represents a business manager.
type Business struct {
	ID                 string `json:"id"                            yaml:"id"`
	Name               string `json:"name,omitempty"                yaml:"name,omitempty"`
	VerificationStatus string `json:"verification_status,omitempty" yaml:"verification_status,omitempty"`
	CreatedTime        string `json:"created_time,omitempty"        yaml:"created_time,omitempty"`
	Link               string `json:"link,omitempty"                yaml:"link,omitempty"`
}

// Campaign represents a campaign.
type Campaign struct {
	ID                  string     `json:"id"                              yaml:"id"`
	Name                string     `json:"name,omitempty"                  yaml:"name,omitempty"`
	Objective           string     `json:"objective,omitempty"             yaml:"objective,omitempty"`
	Status              string     `json:"status,omitempty"                yaml:"status,omitempty"`
	EffectiveStatus     string     `json:"effective_status,omitempty"      yaml:"effective_status,omitempty"`
	DailyBudget         MinorUnits `json:"daily_budget,omitempty"          yaml:"daily_budget,omitempty"`
	LifetimeBudget      MinorUnits `json:"lifetime_budget,omitempty"       yaml:"lifetime_budget,omitempty"`
	BudgetRemaining     MinorUnits `json:"budget_remaining,omitempty"      yaml:"budget_remaining,omitempty"`
	BidStrategy         string     `json:"bid_strategy,omitempty"          yaml:"bid_strategy,omitempty"`
	BuyingType          string     `json:"buying_type,omitempty"           yaml:"buying_type,omitempty"`
	SpecialAdCategories []string   `json:"special_ad_categories,omitempty" yaml:"special_ad_categories,omitempty"`
	StartTime           string     `json:"start_time,omitempty"            yaml:"start_time,omitempty"`
	StopTime            string     `json:"stop_time,omitempty"             yaml:"stop_time,omitempty"`
	CreatedTime         string     `json:"created_time,omitempty"          yaml:"created_time,omitempty"`
	UpdatedTime         string     `json:"updated_time,omitempty"          yaml:"updated_time,omitempty"`
}

// AdSet represents an ad set.
type AdSet struct {
	ID               string          `json:"id"                          yaml:"id"`
	Name             string          `json:"name,omitempty"              yaml:"name,omitempty"`
	CampaignID       string          `json:"campaign_id,omitempty"       yaml:"campaign_id,omitempty"`
	Status           string          `json:"status,omitempty"            yaml:"status,omitempty"`
	EffectiveStatus  string          `json:"effective_status,omitempty"  yaml:"effective_status,omitempty"`
	DailyBudget      MinorUnits      `json:"daily_budget,omitempty"      yaml:"daily_budget,omitempty"`
	LifetimeBudget   MinorUnits      `json:"lifetime_budget,omitempty"   yaml:"lifetime_budget,omitempty"`
	OptimizationGoal string          `json:"optimization_goal,omitempty" yaml:"optimization_goal,omitempty"`
	BillingEvent     string          `json:"billing_event,omitempty"     yaml:"billing_event,omitempty"`
	BidAmount        MinorUnits      `json:"bid_amount,omitempty"        yaml:"bid_amount,omitempty"`
	BidStrategy      string          `json:"bid_strategy,omitempty"      yaml:"bid_strategy,omitempty"`
	Targeting        json.RawMessage `json:"targeting,omitempty"         yaml:"-"`
	StartTime        string          `json:"start_time,omitempty"        yaml:"start_time,omitempty"`
	EndTime          string          `json:"end_time,omitempty"          yaml:"end_time,omitempty"`
	CreatedTime      string          `json:"created_time,omitempty"      yaml:"created_time,omitempty"`
	UpdatedTime      string          `json:"updated_time,omitempty"      yaml:"updated_time,omitempty"`
}

// Ad represents an ad.
type Ad struct {
	ID              string `json:"id"                         yaml:"id"`
	Name            string `json:"name,omitempty"             yaml:"name,omitempty"`
	AdSetID         string `json:"adset_id,omitempty"         yaml:"adset_id,omitempty"`
	CampaignID      string `json:"campaign_id,omitempty"      yaml:"campaign_id,omitempty"`
	Status          string `json:"status,omitempty"           yaml:"status,omitempty"`
	EffectiveStatus string `json:"effective_status,omitempty" yaml:"effective_status,omitempty"`
	Creative        *Ref   `json:"creative,omitempty"         yaml:"creative,omitempty"`
	CreatedTime     string `json:"created_time,omitempty"     yaml:"created_time,omitempty"`
	UpdatedTime     string `json:"updated_time,omitempty"     yaml:"updated_time,omitempty"`
}

// Creative represents an ad creative.
type Creative struct {
	ID               string          `json:"id"                            yaml:"id"`
	Name             string          `json:"name,omitempty"                yaml:"name,omitempty"`
	Status           string          `json:"status,omitempty"              yaml:"status,omitempty"`
	Title            string          `json:"title,omitempty"               yaml:"title,omitempty"`
	Body             string          `json:"body,omitempty"                yaml:"body,omitempty"`
	ObjectStorySpec  json.RawMessage `json:"object_story_spec,omitempty"   yaml:"-"`
	ImageHash        string          `json:"image_hash,omitempty"          yaml:"image_hash,omitempty"`
	ImageURL         string          `json:"image_url,omitempty"           yaml:"image_url,omitempty"`
	ThumbnailURL     string          `json:"thumbnail_url,omitempty"       yaml:"thumbnail_url,omitempty"`
	CallToActionType string          `json:"call_to_action_type,omitempty" yaml:"call_to_action_type,omitempty"`
}

// AdImage represents an uploaded image.
type AdImage struct {
	Hash        string `json:"hash"                   yaml:"hash"`
	Name        string `json:"name,omitempty"         yaml:"name,omitempty"`
	URL         string `json:"url,omitempty"          yaml:"url,omitempty"`
	Status      string `json:"status,omitempty"       yaml:"status,omitempty"`
	Width       int    `json:"width,omitempty"        yaml:"width,omitempty"`
	Height      int    `json:"height,omitempty"       yaml:"height,omitempty"`
	CreatedTime string `json:"created_time,omitempty" yaml:"created_time,omitempty"`
}

// StatusDescription is the {code, description} pair used by audiences.
type StatusDescription struct {
	Code        int    `json:"code"                  yaml:"code"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Audience represents a custom or lookalike audience.
type Audience struct {
	ID                         string             `json:"id"                                      yaml:"id"`
	Name                       string             `json:"name,omitempty"                          yaml:"name,omitempty"`
	Subtype                    string             `json:"subtype,omitempty"                       yaml:"subtype,omitempty"`
	Description                string             `json:"description,omitempty"                   yaml:"description,omitempty"`
	ApproximateCountLowerBound int64              `json:"approximate_count_lower_bound,omitempty" yaml:"approximate_count_lower_bound,omitempty"`
	ApproximateCountUpperBound int64              `json:"approximate_count_upper_bound,omitempty" yaml:"approximate_count_upper_bound,omitempty"`
	RetentionDays              int                `json:"retention_days,omitempty"                yaml:"retention_days,omitempty"`
	DeliveryStatus             *StatusDescription `json:"delivery_status,omitempty"               yaml:"delivery_status,omitempty"`
	OperationStatus            *StatusDescription `json:"operation_status,omitempty"              yaml:"operation_status,omitempty"`
	TimeCreated                int64              `json:"time_created,omitempty"                  yaml:"time_created,omitempty"`
	TimeUpdated                int64              `json:"time_updated,omitempty"                  yaml:"time_updated,omitempty"`
}

// Pixel represents a conversion tracking pixel.
type Pixel struct {
	ID            string `json:"id"                        yaml:"id"`
	Name          string `json:"name,omitempty"            yaml:"name,omitempty"`
	Code          string `json:"code,omitempty"            yaml:"code,omitempty"`
	CreationTime  string `json:"creation_time,omitempty"   yaml:"creation_time,omitempty"`
	LastFiredTime string `json:"last_fired_time,omitempty" yaml:"last_fired_time,omitempty"`
	IsUnavailable bool   `json:"is_unavailable,omitempty"  yaml:"is_unavailable,omitempty"`
}

// Catalog represents a product catalog.
type Catalog struct {
	ID           string `json:"id"                      yaml:"id"`
	Name         string `json:"name,omitempty"          yaml:"name,omitempty"`
	ProductCount int    `json:"product_count,omitempty" yaml:"product_count,omitempty"`
	Vertical     string `json:"vertical,omitempty"      yaml:"vertical,omitempty"`
}

// Action is one entry of an insights actions breakdown.
type Action struct {
	ActionType string `json:"action_type" yaml:"action_type"`
	Value      string `json:"value"       yaml:"value"`
}

// InsightsRecord is one row of a performance report. Metrics stay as the
// upstream decimal strings.
type InsightsRecord struct {
	AccountID    string   `json:"account_id,omitempty"    yaml:"account_id,omitempty"`
	CampaignID   string   `json:"campaign_id,omitempty"   yaml:"campaign_id,omitempty"`
	CampaignName string   `json:"campaign_name,omitempty" yaml:"campaign_name,omitempty"`
	AdSetID      string   `json:"adset_id,omitempty"      yaml:"adset_id,omitempty"`
	AdSetName    string   `json:"adset_name,omitempty"    yaml:"adset_name,omitempty"`
	AdID         string   `json:"ad_id,omitempty"         yaml:"ad_id,omitempty"`
	AdName       string   `json:"ad_name,omitempty"       yaml:"ad_name,omitempty"`
	Impressions  string   `json:"impressions,omitempty"   yaml:"impressions,omitempty"`
	Clicks       string   `json:"clicks,omitempty"        yaml:"clicks,omitempty"`
	Reach        string   `json:"reach,omitempty"         yaml:"reach,omitempty"`
	Frequency    string   `json:"frequency,omitempty"     yaml:"frequency,omitempty"`
	Spend        string   `json:"spend,omitempty"         yaml:"spend,omitempty"`
	CTR          string   `json:"ctr,omitempty"           yaml:"ctr,omitempty"`
	CPC          string   `json:"cpc,omitempty"           yaml:"cpc,omitempty"`
	CPM          string   `json:"cpm,omitempty"           yaml:"cpm,omitempty"`
	Actions      []Action `json:"actions,omitempty"       yaml:"actions,omitempty"`
	DateStart    string   `json:"date_start,omitempty"    yaml:"date_start,omitempty"`
	DateStop     string   `json:"date_stop,omitempty"     yaml:"date_stop,omitempty"`
}

// TimeRange bounds an insights query with ISO-8601 dates.
type TimeRange struct {
	Since string `json:"since"`
	Until string `json:"until"`
}
