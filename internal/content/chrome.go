package content

import "github.com/goliatone/go-sitecms/internal/navigation"

var fallbackMenu = []MenuItem{
	{Text: "Home", Link: "/home"},
	{Text: "About", Link: "/about"},
	{Text: "Products", Link: "/home#products"},
	{Text: "Solutions", Link: "/home#solutions"},
	{Text: "Careers", Link: "/home/imageGrid"},
	{Text: "Contact", Link: "/home#contact"},
	{Text: "Sales Enquire", Link: "/home/imageGrid", IsPrimary: true},
}

// ResolveNavbar builds the navbar from its stored document. An empty menu
// falls back to the built-in one. Every item gets the href its click
// resolves to; submenu entries without an id or label are dropped.
func ResolveNavbar(doc map[string]any) NavbarProps {
	stored := fields(doc)
	props := NavbarProps{Logo: pick(stored.str("logo"), fallbackLogo)}

	items := stored.list("menuItems")
	if items == nil {
		props.MenuItems = make([]MenuItem, 0, len(fallbackMenu))
		for _, item := range fallbackMenu {
			item.Href = navigation.ResolveMenuItem(navigation.MenuItem{Text: item.Text, Link: item.Link}).Path
			props.MenuItems = append(props.MenuItems, item)
		}
		return props
	}

	for _, raw := range items {
		item := asFields(raw)
		if item == nil {
			continue
		}
		nav := navigation.MenuItem{Text: item.str("text"), Link: item.str("link")}
		primary, _ := item["isPrimary"].(bool)
		menu := MenuItem{
			Text:      nav.Text,
			Link:      nav.Link,
			IsPrimary: primary,
			Href:      navigation.ResolveMenuItem(nav).Path,
		}
		base := navigation.BasePath(nav)
		for _, rawSub := range item.list("submenu") {
			sub := asFields(rawSub)
			id := sub.str("target", "sectionId", "id")
			label := sub.str("label", "text")
			if id == "" || label == "" {
				continue
			}
			menu.Submenu = append(menu.Submenu, SubmenuItem{
				ID:    id,
				Label: label,
				Href:  navigation.ResolveSubmenu(base, id).Path,
			})
		}
		props.MenuItems = append(props.MenuItems, menu)
	}
	return props
}

// ResolveFooter completes the three footer link lists against the
// built-in ones.
func ResolveFooter(doc map[string]any) FooterProps {
	stored := fields(doc)
	return FooterProps{
		Products:  completeList(stored.list("products"), fallbackFooter.Products, completeLink),
		Solutions: completeList(stored.list("solutions"), fallbackFooter.Solutions, completeLink),
		Company:   completeList(stored.list("company"), fallbackFooter.Company, completeLink),
	}
}
