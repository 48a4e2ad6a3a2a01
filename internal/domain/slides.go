package domain

import (
	"fmt"
	"strings"
)

// TotalSlides is the fixed length of the growth strategy deck
const TotalSlides = 10

// SlideNavigator tracks the current slide of the deck
type SlideNavigator struct {
	index int
}

// NewSlideNavigator creates a navigator on the first slide
func NewSlideNavigator() *SlideNavigator {
	return &SlideNavigator{}
}

// NextSlide moves forward one slide. Returns false on the last slide.
func (n *SlideNavigator) NextSlide() bool {
	if n.index >= TotalSlides-1 {
		return false
	}
	n.index++
	return true
}

// PrevSlide moves back one slide. Returns false on the first slide.
func (n *SlideNavigator) PrevSlide() bool {
	if n.index <= 0 {
		return false
	}
	n.index--
	return true
}

// Index returns the zero-based slide index
func (n *SlideNavigator) Index() int {
	return n.index
}

// Position returns the one-based slide number for display
func (n *SlideNavigator) Position() int {
	return n.index + 1
}

// Total returns the deck length
func (n *SlideNavigator) Total() int {
	return TotalSlides
}

// Image references a static asset shown on a slide
type Image struct {
	Src     string
	Alt     string
	Caption string
}

// Link is an external reference attached to a slide
type Link struct {
	Label string
	URL   string
}

// Slide is one fixed content block of the deck
type Slide struct {
	Kicker  string // emphasized lead word or target number (e.g. "WHY", "Target 1")
	Title   string
	Body    string
	Bullets []string
	Note    string
	Link    *Link
	Images  []Image
}

var deck = [TotalSlides]Slide{
	{
		Kicker: "WHY",
		Title:  "are signups important?",
		Bullets: []string{
			"Attractive metric while raising money (Short Term)",
			"More signups = more product adoption = More Growth",
		},
	},
	{
		Kicker: "WHO",
		Title:  "is the ideal user persona?",
		Bullets: []string{
			"Startup founders for B2B",
			"People, typically from the age of 18 to 30, are the earliest adopters of these platforms",
			"Communities of Builders",
		},
	},
	{
		Kicker: "HOW",
		Title:  "I targeted these communities",
		Note:   "I started off by getting sign-ups from my inner circle (friends, family, roommates, etc.). But that was short-term.",
		Body:   "Then I moved to targeting communities through various mediums, as I mentioned earlier.",
	},
	{
		Kicker: "Target 1",
		Title:  "Articles",
		Body:   "Wrote a Medium article about how I met Suraj at SF and spoke more about XO on Medium with AI automation, AI tools, and tags to target our ideal user persona. Attached referral links throughout the article.",
		Link: &Link{
			Label: "Read the article",
			URL:   "https://medium.com/@Sachin_Jain__/a-popsicle-a-founder-and-the-ai-development-problem-nobodys-talking-about-86e8380d1afd",
		},
		Images: []Image{{Src: "/images/medium-article.png", Alt: "Medium Article Screenshot"}},
	},
	{
		Kicker: "Target 2",
		Title:  "X Post",
		Body:   "Because this is where I have personally found out about many great tools.",
		Link: &Link{
			Label: "View the post",
			URL:   "https://x.com/SachinJain2306/status/1981613528286220309",
		},
		Images: []Image{{Src: "/images/x-post.png", Alt: "X (Twitter) Post Screenshot"}},
	},
	{
		Kicker: "Target 3",
		Title:  "University Groups",
		Body:   "Found my friends from different universities and asked them to share their referral link with a short message in different University groups.",
		Images: []Image{
			{Src: "/images/sjsu-logo.png", Alt: "San Jose State University", Caption: "San Jose State University"},
			{Src: "/images/utd-logo.png", Alt: "UT Dallas", Caption: "University of Texas at Dallas"},
		},
	},
	{
		Kicker: "Target 4",
		Title:  "UTD Social Media",
		Body:   `Having worked for UTD's social media, asked a few juniors to post about XO as a part of their "Tech Tuesday" social media campaign.`,
		Images: []Image{{Src: "/images/utd-jsom-instagram.png", Alt: "UTD JSOM Instagram Account"}},
	},
	{
		Kicker: "Target 5",
		Title:  "Yudi's Student Community",
		Body:   "**1000+ members** with wide reach across student communities",
		Note:   `"Hey guys, I came across this really interesting tool called XO, which is similar to Lovable but on steroids. It's an AI-powered platform where you can not only prototype but also deploy entire full-stack applications using simple text prompts. It handles the database, authentication, and all the backend logic, which is pretty amazing. I'm still exploring all its features, but it seems like a massive time-saver for new projects. If you're interested in checking it out, they have a referral program where we all get some free credits if you complete a quick 1-minute signup."`,
		Images: []Image{
			{Src: "/images/yudi-community.png", Alt: "Yudi's Community WhatsApp"},
			{Src: "/images/meetup-photo.jpg", Alt: "Community Meetup"},
		},
	},
	{
		Kicker: "Target 6",
		Title:  "SF Tech Meetups",
		Body:   "Haven't been able to attend one lately but plan on sticking these in Frontier Tower and possibly other venues dedicated for tech meetups!",
		Images: []Image{{Src: "/images/qr-code.png", Alt: "QR Code for XO"}},
	},
	{
		Title:  "Mission Accomplished! 🎉",
		Body:   "Rank #4 Globally • 1,390 Total Points • 25 Invites",
		Images: []Image{{Src: "/images/leaderboard.png", Alt: "XO Leaderboard - Rank #4 Globally"}},
	},
}

// SlideAt returns the content block for a slide index. The index must be in
// [0, TotalSlides); callers hold it through a SlideNavigator.
func SlideAt(index int) Slide {
	return deck[index]
}

// Heading joins the kicker and title the way the slide header shows them
func (s Slide) Heading() string {
	switch {
	case s.Kicker == "":
		return s.Title
	case strings.HasPrefix(s.Kicker, "Target"):
		return s.Kicker + ": " + s.Title
	default:
		return s.Kicker + " " + s.Title
	}
}

// Markdown renders the slide as a markdown document
func (s Slide) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", s.Heading())

	if s.Note != "" {
		fmt.Fprintf(&b, "> %s\n\n", s.Note)
	}
	if s.Body != "" {
		b.WriteString(s.Body)
		b.WriteString("\n\n")
	}
	for i, bullet := range s.Bullets {
		fmt.Fprintf(&b, "%d. %s\n", i+1, bullet)
	}
	if len(s.Bullets) > 0 {
		b.WriteString("\n")
	}
	if s.Link != nil {
		fmt.Fprintf(&b, "[%s →](%s)\n\n", s.Link.Label, s.Link.URL)
	}
	for _, img := range s.Images {
		label := img.Alt
		if img.Caption != "" && img.Caption != img.Alt {
			label = img.Caption
		}
		fmt.Fprintf(&b, "- _image:_ %s (`%s`)\n", label, img.Src)
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}
