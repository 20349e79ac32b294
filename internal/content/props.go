package content

import "github.com/goliatone/go-sitecms/internal/sections"

// Props is the resolved render input of one section. Each section kind has
// its own concrete type.
type Props interface {
	Kind() sections.Kind
}

type HeroProps struct {
	Title        string   `json:"title"`
	Subtitle     string   `json:"subtitle"`
	ButtonText   string   `json:"buttonText"`
	ButtonLink   string   `json:"buttonLink"`
	Main1        string   `json:"main1"`
	Main2        string   `json:"main2"`
	Main3        string   `json:"main3"`
	PartnerText  string   `json:"partnerText"`
	PartnerLogos []string `json:"partnerLogos"`
}

type Card struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type AboutProps struct {
	Heading    string `json:"heading"`
	Subheading string `json:"subheading"`
	Cards      []Card `json:"cards"`
}

type ProductCard struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Bg          string `json:"bg"`
	Images      string `json:"images"`
}

type ProductsProps struct {
	Heading    string        `json:"heading"`
	Subheading string        `json:"subheading"`
	Cards      []ProductCard `json:"cards"`
}

type Slide struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type SolutionsProps struct {
	Heading    string  `json:"heading"`
	Subheading string  `json:"subheading"`
	Slides     []Slide `json:"slides"`
}

type Tile struct {
	Image string `json:"image"`
	Link  string `json:"link"`
	Label string `json:"label"`
}

type ImageGridProps struct {
	Experience Tile `json:"experience"`
	Insight    Tile `json:"insight"`
	Innovate   Tile `json:"innovate"`
	Accelerate Tile `json:"accelerate"`
	Assure     Tile `json:"assure"`
}

type Office struct {
	Label   string `json:"label"`
	Address string `json:"address"`
}

// EmailJS holds the browser mail relay settings passed through to the
// contact form.
type EmailJS struct {
	ServiceID  string `json:"serviceId,omitempty"`
	TemplateID string `json:"templateId,omitempty"`
	PublicKey  string `json:"publicKey,omitempty"`
}

type ContactProps struct {
	Heading          string   `json:"heading"`
	Description      string   `json:"description"`
	Offices          []Office `json:"offices"`
	Phone            string   `json:"phone"`
	Email            string   `json:"email"`
	ToEmail          string   `json:"toEmail"`
	ContactInfoTitle string   `json:"contactInfoTitle"`
	GetInTouchTitle  string   `json:"getInTouchTitle"`
	EmailJS          EmailJS  `json:"emailjs"`
}

type AboutHeroProps struct {
	Image string `json:"image"`
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
}

type AboutOverviewProps struct {
	Title      string   `json:"title"`
	Image      string   `json:"image"`
	Paragraphs []string `json:"paragraphs"`
}

type AboutMissionProps struct {
	Title    string `json:"title"`
	Text     string `json:"text"`
	TextHTML string `json:"textHtml,omitempty"`
	Image    string `json:"image"`
}

type AboutStartedProps struct {
	Title    string `json:"title"`
	Lead     string `json:"lead"`
	Text     string `json:"text"`
	TextHTML string `json:"textHtml,omitempty"`
	Image    string `json:"image"`
}

func (*HeroProps) Kind() sections.Kind          { return sections.KindHero }
func (*AboutProps) Kind() sections.Kind         { return sections.KindAbout }
func (*ProductsProps) Kind() sections.Kind      { return sections.KindProducts }
func (*SolutionsProps) Kind() sections.Kind     { return sections.KindSolutions }
func (*ImageGridProps) Kind() sections.Kind     { return sections.KindImageGrid }
func (*ContactProps) Kind() sections.Kind       { return sections.KindContact }
func (*AboutHeroProps) Kind() sections.Kind     { return sections.KindAboutHero }
func (*AboutOverviewProps) Kind() sections.Kind { return sections.KindAboutOverview }
func (*AboutMissionProps) Kind() sections.Kind  { return sections.KindAboutMission }
func (*AboutStartedProps) Kind() sections.Kind  { return sections.KindAboutStarted }

type Link struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

type FooterProps struct {
	Products  []Link `json:"products"`
	Solutions []Link `json:"solutions"`
	Company   []Link `json:"company"`
}

type SubmenuItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Href  string `json:"href"`
}

type MenuItem struct {
	Text      string        `json:"text"`
	Link      string        `json:"link"`
	IsPrimary bool          `json:"isPrimary"`
	Href      string        `json:"href"`
	Submenu   []SubmenuItem `json:"submenu,omitempty"`
}

type NavbarProps struct {
	Logo      string     `json:"logo"`
	MenuItems []MenuItem `json:"menuItems"`
}
