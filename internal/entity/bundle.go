package entity

// Typed shape of one locale's content bundle as edited in the dashboard
// draft. The published copy stays opaque JSON; these types only back the
// draft operations (partial merge, service edits) and the default content.

type Bundle struct {
	Site         SiteMeta      `json:"site"`
	Hero         Hero          `json:"hero"`
	Logos        []Logo        `json:"logos"`
	Features     []Feature     `json:"features"`
	Services     []Service     `json:"services"`
	Payments     []Payment     `json:"payments"`
	Testimonials []Testimonial `json:"testimonials"`
	FAQ          []FAQItem     `json:"faq"`
	Contact      ContactCopy   `json:"contact"`
	CTA          CTACopy       `json:"cta"`
}

type SiteMeta struct {
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	LogoSrc     string `json:"logoSrc"`
}

type Hero struct {
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle"`
	CTAText  string     `json:"ctaText"`
	Stats    []HeroStat `json:"stats"`
}

type HeroStat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Logo struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

type Feature struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Icon  string `json:"icon"`
}

type Service struct {
	Title     string `json:"title"`
	Text      string `json:"text"`
	Price     string `json:"price"`
	Icon      string `json:"icon"`
	IconImage string `json:"iconImage,omitempty"`
	Featured  bool   `json:"featured"`
}

type Payment struct {
	Name string `json:"name"`
	Note string `json:"note"`
	Icon string `json:"icon"`
}

type Testimonial struct {
	Name   string `json:"name"`
	Quote  string `json:"quote"`
	Rating int    `json:"rating"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type ContactCopy struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
}

type CTACopy struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Button   string `json:"button"`
}

// BlockKind is the closed set of renderable page sections. Dispatch over
// block kinds is exhaustive; unknown kinds are rejected at the edge.
type BlockKind string

const (
	BlockHero         BlockKind = "hero"
	BlockLogos        BlockKind = "logos"
	BlockFeatures     BlockKind = "features"
	BlockServices     BlockKind = "services"
	BlockPayments     BlockKind = "payments"
	BlockTestimonials BlockKind = "testimonials"
	BlockFAQ          BlockKind = "faq"
	BlockContact      BlockKind = "contact"
	BlockCTA          BlockKind = "cta"
)

func ValidBlockKind(k BlockKind) bool {
	switch k {
	case BlockHero, BlockLogos, BlockFeatures, BlockServices, BlockPayments,
		BlockTestimonials, BlockFAQ, BlockContact, BlockCTA:
		return true
	}
	return false
}

// BlockConfig is one entry in the page block ordering list.
type BlockConfig struct {
	Id      string    `json:"id"`
	Type    BlockKind `json:"type"`
	Enabled bool      `json:"enabled"`
}

// Design holds palette and animation knobs shared by all blocks.
type Design struct {
	Palette string     `json:"palette"`
	Anim    AnimConfig `json:"anim"`
}

type AnimConfig struct {
	EnableReveal bool    `json:"enableReveal"`
	Intensity    float64 `json:"intensity"`
	Parallax     float64 `json:"parallax"`
}
