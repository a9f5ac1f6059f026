package model

import "encoding/json"

// Content is the single aggregate document holding every manageable
// section of the portfolio site. It is owned by the store and mutated
// only through its write path.
type Content struct {
	Hero         Hero          `json:"hero"`
	About        About         `json:"about"`
	Resume       Resume        `json:"resume"`
	Photos       []Photo       `json:"photos"`
	Videos       []Video       `json:"videos"`
	Testimonials []Testimonial `json:"testimonials"`
	Blog         []BlogPost    `json:"blog"`
	Contact      Contact       `json:"contact"`
	Settings     Settings      `json:"settings"`
}

// Hero is the landing-section copy.
type Hero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Tagline  string `json:"tagline"`
	Image    string `json:"image"`
	CTAText  string `json:"ctaText"`
	CTALink  string `json:"ctaLink"`
}

// About holds the about-section copy plus the stat cards shown under it.
type About struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	Stats       []StatCard `json:"stats"`
}

type StatCard struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Resume groups the three sub-sections addressed by key on the resume
// endpoint: experience, skills and aboutMe.
type Resume struct {
	Experience []Experience `json:"experience"`
	Skills     []Skill      `json:"skills"`
	AboutMe    AboutMe      `json:"aboutMe"`
}

type Experience struct {
	Role        string `json:"role"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

type Skill struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category"`
}

type AboutMe struct {
	Summary   string `json:"summary"`
	Highlight string `json:"highlight"`
}

type Photo struct {
	Src      string `json:"src"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

type Video struct {
	URL       string `json:"url"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
}

type Testimonial struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Quote  string `json:"quote"`
	Avatar string `json:"avatar"`
}

// BlogPost is id-addressed; the id is a millisecond-timestamp string
// generated at creation time.
type BlogPost struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`
	Author  string `json:"author"`
	Image   string `json:"image"`
}

type Contact struct {
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin"`
	Instagram string `json:"instagram"`
	YouTube   string `json:"youtube"`
}

type Settings struct {
	SiteTitle       string `json:"siteTitle"`
	SiteDescription string `json:"siteDescription"`
	Favicon         string `json:"favicon"`
	AccentColor     string `json:"accentColor"`
	ShowBlog        bool   `json:"showBlog"`
	ShowVideos      bool   `json:"showVideos"`
}

// Default returns the document served before anything has been saved.
// Every section has a well-defined shape so API consumers never see a
// missing section.
func Default() *Content {
	return &Content{
		Hero: Hero{
			Title:    "Hussam Awa",
			Subtitle: "Media Professional & Presenter",
			Tagline:  "Telling stories that move people",
			Image:    "/images/hero.jpg",
			CTAText:  "Get in touch",
			CTALink:  "#contact",
		},
		About: About{
			Title:       "About Me",
			Description: "Media professional with over a decade of on-camera and production experience across television and digital platforms.",
			Image:       "/images/about.jpg",
			Stats: []StatCard{
				{Value: "10+", Label: "Years Experience"},
				{Value: "200+", Label: "Projects Delivered"},
				{Value: "50+", Label: "Happy Clients"},
				{Value: "15", Label: "Awards Won"},
			},
		},
		Resume: Resume{
			Experience: []Experience{},
			Skills:     []Skill{},
			AboutMe: AboutMe{
				Summary: "Presenter, producer and media consultant.",
			},
		},
		Photos:       []Photo{},
		Videos:       []Video{},
		Testimonials: []Testimonial{},
		Blog:         []BlogPost{},
		Contact: Contact{
			Email:    "contact@hussamawa.com",
			Location: "Dubai, UAE",
		},
		Settings: Settings{
			SiteTitle:       "Hussam Awa",
			SiteDescription: "Personal portfolio of Hussam Awa",
			AccentColor:     "#d4af37",
			ShowBlog:        true,
			ShowVideos:      true,
		},
	}
}

// Clone deep-copies the document through a JSON round-trip so callers
// can mutate the copy without racing the store's in-memory state.
func (c *Content) Clone() (*Content, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	var out Content
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
