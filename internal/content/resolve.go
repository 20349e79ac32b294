package content

import (
	"sort"

	"github.com/goliatone/go-sitecms/internal/sections"
)

// Resolve merges the overrides of section with the shared default document
// of its kind and the built-in fallback. Scalars fall through field by
// field; lists are chosen whole and their elements completed from the
// fallback list. For the about page kinds shared is the matching
// sub-document of aboutPage.
func Resolve(section sections.CanonicalSection, shared map[string]any) Props {
	override := fields(section.Overrides)
	base := fields(shared)

	switch section.Type {
	case sections.KindHero:
		return resolveHero(override, base)
	case sections.KindAbout:
		return resolveAbout(override, base)
	case sections.KindProducts:
		return resolveProducts(override, base)
	case sections.KindSolutions:
		return resolveSolutions(override, base)
	case sections.KindImageGrid:
		return resolveImageGrid(override, base)
	case sections.KindContact:
		return resolveContact(override, base)
	case sections.KindAboutHero:
		return &AboutHeroProps{
			Image: pick(override.str("image"), base.str("image"), fallbackAboutHero.Image),
			Line1: pick(override.str("line1", "title"), base.str("line1"), fallbackAboutHero.Line1),
			Line2: pick(override.str("line2", "subtitle"), base.str("line2"), fallbackAboutHero.Line2),
		}
	case sections.KindAboutOverview:
		return &AboutOverviewProps{
			Title:      pick(override.str("title"), base.str("title"), fallbackAboutOverview.Title),
			Image:      pick(override.str("image"), base.str("image"), fallbackAboutOverview.Image),
			Paragraphs: completeList(pickList(override.list("paragraphs"), base.list("paragraphs")), fallbackAboutOverview.Paragraphs, completeString),
		}
	case sections.KindAboutMission:
		return &AboutMissionProps{
			Title: pick(override.str("title"), base.str("title"), fallbackAboutMission.Title),
			Text:  pick(override.str("text", "body"), base.str("text"), fallbackAboutMission.Text),
			Image: pick(override.str("image"), base.str("image"), fallbackAboutMission.Image),
		}
	case sections.KindAboutStarted:
		return &AboutStartedProps{
			Title: pick(override.str("title"), base.str("title"), fallbackAboutStarted.Title),
			Lead:  pick(override.str("lead", "subtitle"), base.str("lead"), fallbackAboutStarted.Lead),
			Text:  pick(override.str("text", "body"), base.str("text"), fallbackAboutStarted.Text),
			Image: pick(override.str("image"), base.str("image"), fallbackAboutStarted.Image),
		}
	}
	return nil
}

func resolveHero(override, base fields) *HeroProps {
	fb := fallbackHero
	return &HeroProps{
		Title:        pick(override.str("title"), base.str("title"), fb.Title),
		Subtitle:     pick(override.str("subtitle"), base.str("subtitle"), fb.Subtitle),
		ButtonText:   pick(override.str("buttonText"), base.str("buttonText"), fb.ButtonText),
		ButtonLink:   pick(override.str("buttonLink"), base.str("buttonLink"), fb.ButtonLink),
		Main1:        pick(override.str("main1", "image"), base.str("main1"), fb.Main1),
		Main2:        pick(override.str("main2"), base.str("main2"), fb.Main2),
		Main3:        pick(override.str("main3"), base.str("main3"), fb.Main3),
		PartnerText:  pick(override.str("partnerText"), base.str("partnerText"), fb.PartnerText),
		PartnerLogos: completeList(pickList(override.list("partnerLogos"), base.list("partnerLogos")), fb.PartnerLogos, completeString),
	}
}

func resolveAbout(override, base fields) *AboutProps {
	fb := fallbackAbout
	return &AboutProps{
		Heading:    pick(override.str("heading", "title"), base.str("heading"), fb.Heading),
		Subheading: pick(override.str("subheading", "subtitle"), base.str("subheading"), fb.Subheading),
		Cards: completeList(pickList(override.list("cards"), base.list("cards")), fb.Cards, func(item fields, _ any, f Card) Card {
			return Card{
				Title:       pick(item.str("title"), f.Title),
				Description: pick(item.str("description"), f.Description),
			}
		}),
	}
}

func resolveProducts(override, base fields) *ProductsProps {
	fb := fallbackProducts
	return &ProductsProps{
		Heading:    pick(override.str("heading"), base.str("heading"), fb.Heading),
		Subheading: pick(override.str("subheading"), base.str("subheading"), fb.Subheading),
		Cards: completeList(pickList(override.list("cards"), base.list("cards")), fb.Cards, func(item fields, _ any, f ProductCard) ProductCard {
			return ProductCard{
				Title:       pick(item.str("title"), f.Title),
				Subtitle:    pick(item.str("subtitle"), f.Subtitle),
				Description: pick(item.str("description"), f.Description),
				Bg:          pick(item.str("bg"), f.Bg),
				Images:      pick(item.str("images", "image"), f.Images),
			}
		}),
	}
}

func resolveSolutions(override, base fields) *SolutionsProps {
	fb := fallbackSolutions
	return &SolutionsProps{
		Heading:    pick(override.str("heading"), base.str("heading"), fb.Heading),
		Subheading: pick(override.str("subheading"), base.str("subheading"), fb.Subheading),
		Slides: completeList(pickList(override.list("slides"), base.list("slides")), fb.Slides, func(item fields, _ any, f Slide) Slide {
			return Slide{
				Title:       pick(item.str("title"), f.Title),
				Description: pick(item.str("description"), f.Description),
			}
		}),
	}
}

func resolveImageGrid(override, base fields) *ImageGridProps {
	fb := fallbackImageGrid
	tile := func(name string, f Tile) Tile {
		o, b := override.object(name), base.object(name)
		return Tile{
			Image: pick(o.str("image"), b.str("image"), f.Image),
			Link:  pick(o.str("link"), b.str("link"), f.Link),
			Label: pick(o.str("label"), b.str("label"), f.Label),
		}
	}
	return &ImageGridProps{
		Experience: tile("experience", fb.Experience),
		Insight:    tile("insight", fb.Insight),
		Innovate:   tile("innovate", fb.Innovate),
		Accelerate: tile("accelerate", fb.Accelerate),
		Assure:     tile("assure", fb.Assure),
	}
}

func resolveContact(override, base fields) *ContactProps {
	fb := fallbackContact
	oMail, bMail := override.object("emailjs"), base.object("emailjs")
	email := pick(override.str("email"), base.str("email"))
	return &ContactProps{
		Heading:     pick(override.str("heading"), base.str("heading"), fb.Heading),
		Description: pick(override.str("description"), base.str("description"), fb.Description),
		Offices: completeList(pickList(override.list("offices"), base.list("offices")), fb.Offices, func(item fields, _ any, f Office) Office {
			return Office{
				Label:   pick(item.str("label"), f.Label),
				Address: pick(item.str("address"), f.Address),
			}
		}),
		Phone:            pick(override.str("phone"), base.str("phone"), fb.Phone),
		Email:            pick(email, fb.Email),
		ToEmail:          pick(override.str("toEmail"), base.str("email"), fb.ToEmail),
		ContactInfoTitle: pick(override.str("contactInfoTitle"), base.str("contactInfoTitle"), fb.ContactInfoTitle),
		GetInTouchTitle:  pick(override.str("getInTouchTitle"), base.str("getInTouchTitle"), fb.GetInTouchTitle),
		EmailJS: EmailJS{
			ServiceID:  pick(oMail.str("serviceId"), bMail.str("serviceId")),
			TemplateID: pick(oMail.str("templateId"), bMail.str("templateId")),
			PublicKey:  pick(oMail.str("publicKey"), bMail.str("publicKey")),
		},
	}
}

var knownOverrideFields = map[sections.Kind][]string{
	sections.KindHero:          {"title", "subtitle", "buttonText", "buttonLink", "main1", "image", "main2", "main3", "partnerText", "partnerLogos"},
	sections.KindAbout:         {"heading", "title", "subheading", "subtitle", "cards"},
	sections.KindProducts:      {"heading", "subheading", "cards"},
	sections.KindSolutions:     {"heading", "subheading", "slides"},
	sections.KindImageGrid:     {"experience", "insight", "innovate", "accelerate", "assure"},
	sections.KindContact:       {"heading", "description", "offices", "phone", "email", "toEmail", "contactInfoTitle", "getInTouchTitle", "emailjs"},
	sections.KindAboutHero:     {"image", "line1", "title", "line2", "subtitle"},
	sections.KindAboutOverview: {"title", "image", "paragraphs"},
	sections.KindAboutMission:  {"title", "text", "body", "image"},
	sections.KindAboutStarted:  {"title", "lead", "subtitle", "text", "body", "image"},
}

// UnknownOverrides lists override keys the kind of section never reads,
// sorted.
func UnknownOverrides(section sections.CanonicalSection) []string {
	known := knownOverrideFields[section.Type]
	var out []string
	for key := range section.Overrides {
		found := false
		for _, k := range known {
			if k == key {
				found = true
				break
			}
		}
		if !found {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}
