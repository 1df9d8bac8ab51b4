package present

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fivetwenty-io/metaads-client/internal/constants"
	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

// ErrNoTable is returned when a value has no table layout.
var ErrNoTable = errors.New("no table layout for value")

// Kind names an entity kind with a table layout.
type Kind string

// Entity kinds.
const (
	KindAccount  Kind = "account"
	KindBusiness Kind = "business"
	KindCampaign Kind = "campaign"
	KindAdSet    Kind = "ad set"
	KindAd       Kind = "ad"
	KindCreative Kind = "creative"
	KindImage    Kind = "image"
	KindAudience Kind = "audience"
	KindPixel    Kind = "pixel"
	KindCatalog  Kind = "catalog"
	KindInsights Kind = "insights"
)

// Columns lists the fixed column set for each kind.
var Columns = map[Kind][]string{
	KindAccount:  {"ID", "Name", "Status", "Currency", "Amount Spent", "Spend Cap"},
	KindBusiness: {"ID", "Name", "Status", "Created"},
	KindCampaign: {"ID", "Name", "Status", "Objective", "Daily Budget", "Lifetime Budget"},
	KindAdSet:    {"ID", "Name", "Status", "Campaign ID", "Optimization Goal", "Daily Budget"},
	KindAd:       {"ID", "Name", "Status", "Ad Set ID", "Creative ID"},
	KindCreative: {"ID", "Name", "Status", "Title", "Call To Action"},
	KindImage:    {"ID", "Name", "Status", "Size"},
	KindAudience: {"ID", "Name", "Status", "Subtype", "Approx. Size"},
	KindPixel:    {"ID", "Name", "Status", "Last Fired"},
	KindCatalog:  {"ID", "Name", "Status", "Vertical", "Products"},
	KindInsights: {"ID", "Name", "Status", "Impressions", "Clicks", "Spend"},
}

var accountStatuses = map[int]string{
	1:   "ACTIVE",
	2:   "DISABLED",
	3:   "UNSETTLED",
	7:   "PENDING_RISK_REVIEW",
	8:   "PENDING_SETTLEMENT",
	9:   "IN_GRACE_PERIOD",
	100: "PENDING_CLOSURE",
	101: "CLOSED",
	201: "ANY_ACTIVE",
	202: "ANY_CLOSED",
}

// SuccessText is the table rendering of a bare success response.
const SuccessText = "OK"

// Table renders an entity, or a page of entities, as a captioned text table.
func Table(value any) (string, error) {
	if success, ok := value.(ads.SuccessResponse); ok && success.Success {
		return SuccessText, nil
	}

	kind, rows, err := tableRows(value)
	if err != nil {
		return "", err
	}

	var builder strings.Builder

	fmt.Fprintf(&builder, "%s (%d)\n", Caption(kind), len(rows))

	table := tablewriter.NewWriter(&builder)
	table.Header(toCells(Columns[kind])...)

	for _, row := range rows {
		err = table.Append(toCells(row)...)
		if err != nil {
			return "", fmt.Errorf("rendering %s table: %w", kind, err)
		}
	}

	err = table.Render()
	if err != nil {
		return "", fmt.Errorf("rendering %s table: %w", kind, err)
	}

	return strings.TrimRight(builder.String(), "\n"), nil
}

// Caption returns the title-cased plural label of kind.
func Caption(kind Kind) string {
	label := string(kind)

	switch {
	case kind == KindBusiness:
		label = "businesses"
	case !strings.HasSuffix(label, "s"):
		label += "s"
	}

	return cases.Title(language.English).String(label)
}

//nolint:cyclop,gocyclo // one case per entity kind
func tableRows(value any) (Kind, [][]string, error) {
	switch v := value.(type) {
	case *ads.ListResponse[ads.AdAccount]:
		return KindAccount, rowsOf(v.Data, accountRow), nil
	case *ads.AdAccount:
		return KindAccount, [][]string{accountRow(*v)}, nil
	case *ads.ListResponse[ads.Business]:
		return KindBusiness, rowsOf(v.Data, businessRow), nil
	case *ads.Business:
		return KindBusiness, [][]string{businessRow(*v)}, nil
	case *ads.ListResponse[ads.Campaign]:
		return KindCampaign, rowsOf(v.Data, campaignRow), nil
	case *ads.Campaign:
		return KindCampaign, [][]string{campaignRow(*v)}, nil
	case *ads.ListResponse[ads.AdSet]:
		return KindAdSet, rowsOf(v.Data, adSetRow), nil
	case *ads.AdSet:
		return KindAdSet, [][]string{adSetRow(*v)}, nil
	case *ads.ListResponse[ads.Ad]:
		return KindAd, rowsOf(v.Data, adRow), nil
	case *ads.Ad:
		return KindAd, [][]string{adRow(*v)}, nil
	case *ads.ListResponse[ads.Creative]:
		return KindCreative, rowsOf(v.Data, creativeRow), nil
	case *ads.Creative:
		return KindCreative, [][]string{creativeRow(*v)}, nil
	case *ads.ListResponse[ads.AdImage]:
		return KindImage, rowsOf(v.Data, imageRow), nil
	case *ads.AdImage:
		return KindImage, [][]string{imageRow(*v)}, nil
	case *ads.ListResponse[ads.Audience]:
		return KindAudience, rowsOf(v.Data, audienceRow), nil
	case *ads.Audience:
		return KindAudience, [][]string{audienceRow(*v)}, nil
	case *ads.ListResponse[ads.Pixel]:
		return KindPixel, rowsOf(v.Data, pixelRow), nil
	case *ads.Pixel:
		return KindPixel, [][]string{pixelRow(*v)}, nil
	case *ads.ListResponse[ads.Catalog]:
		return KindCatalog, rowsOf(v.Data, catalogRow), nil
	case *ads.Catalog:
		return KindCatalog, [][]string{catalogRow(*v)}, nil
	case *ads.ListResponse[ads.InsightsRecord]:
		return KindInsights, rowsOf(v.Data, insightsRow), nil
	default:
		return "", nil, fmt.Errorf("%w: %T", ErrNoTable, value)
	}
}

func rowsOf[T any](items []T, row func(T) []string) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, row(item))
	}

	return rows
}

func toCells(values []string) []any {
	cells := make([]any, len(values))
	for i, value := range values {
		cells[i] = value
	}

	return cells
}

func accountRow(a ads.AdAccount) []string {
	status, ok := accountStatuses[a.AccountStatus]
	if !ok {
		status = strconv.Itoa(a.AccountStatus)
	}

	if a.AccountStatus == 0 {
		status = constants.NotAvailable
	}

	return []string{a.ID, orDash(a.Name), status, orDash(a.Currency), a.AmountSpent.Format(), a.SpendCap.Format()}
}

func businessRow(b ads.Business) []string {
	return []string{b.ID, orDash(b.Name), orDash(b.VerificationStatus), orDash(b.CreatedTime)}
}

func campaignRow(c ads.Campaign) []string {
	return []string{
		c.ID, orDash(c.Name), orDash(firstNonEmpty(c.EffectiveStatus, c.Status)), orDash(c.Objective),
		c.DailyBudget.Format(), c.LifetimeBudget.Format(),
	}
}

func adSetRow(s ads.AdSet) []string {
	return []string{
		s.ID, orDash(s.Name), orDash(firstNonEmpty(s.EffectiveStatus, s.Status)), orDash(s.CampaignID),
		orDash(s.OptimizationGoal), s.DailyBudget.Format(),
	}
}

func adRow(a ads.Ad) []string {
	creativeID := ""
	if a.Creative != nil {
		creativeID = a.Creative.ID
	}

	return []string{
		a.ID, orDash(a.Name), orDash(firstNonEmpty(a.EffectiveStatus, a.Status)), orDash(a.AdSetID), orDash(creativeID),
	}
}

func creativeRow(c ads.Creative) []string {
	return []string{c.ID, orDash(c.Name), orDash(c.Status), orDash(c.Title), orDash(c.CallToActionType)}
}

func imageRow(i ads.AdImage) []string {
	size := constants.NotAvailable
	if i.Width > 0 && i.Height > 0 {
		size = fmt.Sprintf("%dx%d", i.Width, i.Height)
	}

	return []string{i.Hash, orDash(i.Name), orDash(i.Status), size}
}

func audienceRow(a ads.Audience) []string {
	status := ""
	if a.DeliveryStatus != nil {
		status = a.DeliveryStatus.Description
	}

	size := constants.NotAvailable

	switch {
	case a.ApproximateCountLowerBound > 0 && a.ApproximateCountUpperBound > 0:
		size = fmt.Sprintf("%d-%d", a.ApproximateCountLowerBound, a.ApproximateCountUpperBound)
	case a.ApproximateCountLowerBound > 0:
		size = strconv.FormatInt(a.ApproximateCountLowerBound, 10)
	}

	return []string{a.ID, orDash(a.Name), orDash(status), orDash(a.Subtype), size}
}

func pixelRow(p ads.Pixel) []string {
	status := "active"
	if p.IsUnavailable {
		status = "unavailable"
	}

	return []string{p.ID, orDash(p.Name), status, orDash(p.LastFiredTime)}
}

func catalogRow(c ads.Catalog) []string {
	return []string{c.ID, orDash(c.Name), constants.NotAvailable, orDash(c.Vertical), strconv.Itoa(c.ProductCount)}
}

func insightsRow(r ads.InsightsRecord) []string {
	id := firstNonEmpty(r.AdID, r.AdSetID, r.CampaignID, r.AccountID)
	name := firstNonEmpty(r.AdName, r.AdSetName, r.CampaignName)

	return []string{
		orDash(id), orDash(name), constants.NotAvailable,
		orDash(r.Impressions), orDash(r.Clicks), FormatDecimalMoney(r.Spend),
	}
}

// FormatMinorUnits renders cents as $D.CC.
func FormatMinorUnits(cents int64) string {
	return ads.MinorUnits(cents).Format()
}

// FormatDecimalMoney renders an upstream major-unit decimal string as $D.CC.
// Unparseable input is returned unchanged; empty input renders as "-".
func FormatDecimalMoney(amount string) string {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return constants.NotAvailable
	}

	value, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return amount
	}

	if value < 0 {
		return fmt.Sprintf("-%s%.2f", constants.CurrencySymbol, -value)
	}

	return fmt.Sprintf("%s%.2f", constants.CurrencySymbol, value)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}

	return ""
}

func orDash(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}
