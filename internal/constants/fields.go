package constants

// Default field sets requested when the caller supplies none.
var (
	AccountFields = []string{
		"id", "name", "account_id", "account_status", "currency", "timezone_name",
		"amount_spent", "balance", "spend_cap", "business",
	}

	BusinessFields = []string{
		"id", "name", "verification_status", "created_time", "link",
	}

	CampaignFields = []string{
		"id", "name", "objective", "status", "effective_status", "daily_budget",
		"lifetime_budget", "budget_remaining", "bid_strategy", "buying_type",
		"special_ad_categories", "start_time", "stop_time", "created_time", "updated_time",
	}

	AdSetFields = []string{
		"id", "name", "campaign_id", "status", "effective_status", "daily_budget",
		"lifetime_budget", "optimization_goal", "billing_event", "bid_amount",
		"bid_strategy", "targeting", "start_time", "end_time", "created_time", "updated_time",
	}

	AdFields = []string{
		"id", "name", "adset_id", "campaign_id", "status", "effective_status",
		"creative", "created_time", "updated_time",
	}

	CreativeFields = []string{
		"id", "name", "status", "title", "body", "object_story_spec", "image_hash",
		"image_url", "thumbnail_url", "call_to_action_type",
	}

	ImageFields = []string{
		"hash", "name", "url", "status", "width", "height", "created_time",
	}

	AudienceFields = []string{
		"id", "name", "subtype", "description", "approximate_count_lower_bound",
		"approximate_count_upper_bound", "retention_days", "delivery_status",
		"operation_status", "time_created", "time_updated",
	}

	PixelFields = []string{
		"id", "name", "code", "creation_time", "last_fired_time", "is_unavailable",
	}

	CatalogFields = []string{
		"id", "name", "product_count", "vertical",
	}

	InsightsFields = []string{
		"account_id", "campaign_id", "campaign_name", "adset_id", "adset_name",
		"ad_id", "ad_name", "impressions", "clicks", "reach", "frequency", "spend",
		"ctr", "cpc", "cpm", "actions", "date_start", "date_stop",
	}
)
