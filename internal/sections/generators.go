package sections

import "strings"

// CategoryResult is the outcome of tag-based category inference.
type CategoryResult struct {
	Primary   string
	Secondary string
	Full      string
}

type secondaryRule struct {
	tag   string
	label string
}

type categoryRule struct {
	tag       string
	primary   string
	secondary []secondaryRule
}

// The tables below are ordered slices on purpose: inference is first-match
// over the fixed sequence, and reordering entries changes the output for
// ambiguous tag sets.
var categoryRules = []categoryRule{
	{
		tag:     "residential",
		primary: "Residential",
		secondary: []secondaryRule{
			{"modern", "Modern"},
			{"scandinavian", "Scandinavian"},
			{"minimalist", "Minimalist"},
			{"luxury", "Luxury"},
			{"villa", "Villa"},
			{"house", "House"},
			{"stone", "Stone"},
			{"glass", "Contemporary"},
			{"nordic", "Scandinavian"},
		},
	},
	{
		tag:     "restaurant",
		primary: "Hospitality",
		secondary: []secondaryRule{
			{"elegant", "Restaurant"},
			{"fine-dining", "Fine Dining"},
			{"dark", "Ambient"},
			{"natural", "Biophilic"},
			{"urban", "Bistro"},
			{"garden", "Garden"},
			{"green", "Biophilic"},
			{"biophilic", "Biophilic"},
		},
	},
	{
		tag:     "cafe",
		primary: "Hospitality",
		secondary: []secondaryRule{
			{"coffee", "Coffee"},
			{"industrial", "Industrial"},
			{"artisan", "Specialty"},
			{"specialty", "Specialty"},
			{"urban", "Urban"},
			{"cozy", "Cozy"},
		},
	},
	{
		tag:     "bistro",
		primary: "Hospitality",
		secondary: []secondaryRule{
			{"urban", "Urban"},
			{"modern", "Modern"},
		},
	},
	{
		tag:     "shop",
		primary: "Commercial",
		secondary: []secondaryRule{
			{"retail", "Retail"},
			{"boutique", "Boutique"},
			{"store", "Store"},
			{"local", "Local"},
		},
	},
}

const (
	defaultSecondaryLabel = "Contemporary"
	fallbackCategoryLabel = "Project"
)

// InferCategory derives "{Primary} / {Secondary}" from the project tags using
// first-match over the fixed rule table, defaulting the secondary style to
// "Contemporary" and falling back to the bare "Project" label when no primary
// tag matches.
func InferCategory(tags []string) CategoryResult {
	lower := lowerTags(tags)

	for _, rule := range categoryRules {
		if !lower[rule.tag] {
			continue
		}
		secondary := defaultSecondaryLabel
		for _, sub := range rule.secondary {
			if lower[sub.tag] {
				secondary = sub.label
				break
			}
		}
		return CategoryResult{
			Primary:   rule.primary,
			Secondary: secondary,
			Full:      rule.primary + " / " + secondary,
		}
	}

	return CategoryResult{Primary: fallbackCategoryLabel, Full: fallbackCategoryLabel}
}

type materialRule struct {
	tag       string
	materials []Material
}

var materialRules = []materialRule{
	{"stone", []Material{{Name: "Stone", Color: "bg-stone-300", Kind: "natural"}}},
	{"wood", []Material{{Name: "Oak", Color: "bg-amber-700", Kind: "natural"}, {Name: "Pine", Color: "bg-amber-600", Kind: "natural"}}},
	{"marble", []Material{{Name: "Marble", Color: "bg-zinc-100", Kind: "surface"}}},
	{"brass", []Material{{Name: "Brass", Color: "bg-orange-200", Kind: "accent"}}},
	{"velvet", []Material{{Name: "Velvet", Color: "bg-yellow-500", Kind: "surface"}}},
	{"concrete", []Material{{Name: "Concrete", Color: "bg-zinc-400", Kind: "surface"}}},
	{"metal", []Material{{Name: "Metal", Color: "bg-zinc-600", Kind: "accent"}}},
	{"steel", []Material{{Name: "Steel", Color: "bg-zinc-500", Kind: "accent"}}},
	{"glass", []Material{{Name: "Glass", Color: "bg-blue-100", Kind: "surface"}}},
	{"dark", []Material{{Name: "Charcoal", Color: "bg-zinc-900", Kind: "surface"}}},
	{"natural", []Material{{Name: "Natural Wood", Color: "bg-amber-800", Kind: "natural"}, {Name: "Stone", Color: "bg-stone-300", Kind: "natural"}}},
	{"modern", []Material{{Name: "Steel", Color: "bg-zinc-500", Kind: "accent"}, {Name: "Concrete", Color: "bg-zinc-400", Kind: "surface"}}},
	{"scandinavian", []Material{{Name: "Light Wood", Color: "bg-amber-200", Kind: "natural"}, {Name: "White Marble", Color: "bg-zinc-50", Kind: "surface"}}},
	{"nordic", []Material{{Name: "Light Oak", Color: "bg-amber-200", Kind: "natural"}, {Name: "White Marble", Color: "bg-zinc-50", Kind: "surface"}}},
	{"industrial", []Material{{Name: "Brick", Color: "bg-orange-300", Kind: "surface"}, {Name: "Steel", Color: "bg-zinc-600", Kind: "accent"}}},
	{"luxury", []Material{{Name: "Velvet", Color: "bg-yellow-500", Kind: "surface"}, {Name: "Brass", Color: "bg-orange-200", Kind: "accent"}}},
	{"plants", []Material{{Name: "Greenery", Color: "bg-green-400", Kind: "natural"}}},
	{"green", []Material{{Name: "Greenery", Color: "bg-green-400", Kind: "natural"}}},
	{"biophilic", []Material{{Name: "Living Plants", Color: "bg-green-500", Kind: "natural"}, {Name: "Wood", Color: "bg-amber-700", Kind: "natural"}}},
	{"residential", []Material{{Name: "Wood", Color: "bg-amber-600", Kind: "natural"}, {Name: "Stone", Color: "bg-stone-300", Kind: "natural"}}},
	{"restaurant", []Material{{Name: "Velvet", Color: "bg-yellow-500", Kind: "surface"}, {Name: "Wood", Color: "bg-amber-800", Kind: "natural"}}},
	{"cafe", []Material{{Name: "Concrete", Color: "bg-zinc-400", Kind: "surface"}, {Name: "Wood", Color: "bg-amber-700", Kind: "natural"}}},
	{"coffee", []Material{{Name: "Brass", Color: "bg-orange-200", Kind: "accent"}, {Name: "Dark Wood", Color: "bg-amber-900", Kind: "natural"}}},
	{"cozy", []Material{{Name: "Light Wood", Color: "bg-amber-200", Kind: "natural"}, {Name: "Soft Fabrics", Color: "bg-rose-200", Kind: "surface"}}},
	{"boutique", []Material{{Name: "White Marble", Color: "bg-zinc-50", Kind: "surface"}, {Name: "Brass", Color: "bg-orange-200", Kind: "accent"}}},
	{"retail", []Material{{Name: "Wood", Color: "bg-amber-600", Kind: "natural"}, {Name: "Natural Stone", Color: "bg-stone-400", Kind: "natural"}}},
	{"store", []Material{{Name: "Pine", Color: "bg-amber-500", Kind: "natural"}, {Name: "Natural Stone", Color: "bg-stone-400", Kind: "natural"}}},
	{"local", []Material{{Name: "Cotton", Color: "bg-stone-200", Kind: "surface"}, {Name: "Black Iron", Color: "bg-zinc-800", Kind: "accent"}}},
}

var defaultMaterials = []Material{
	{Name: "Wood", Color: "bg-amber-600", Kind: "natural"},
	{Name: "Stone", Color: "bg-stone-300", Kind: "natural"},
	{Name: "Concrete", Color: "bg-zinc-400", Kind: "surface"},
	{Name: "Steel", Color: "bg-zinc-500", Kind: "accent"},
}

// InferMaterials builds the palette for the given tags as the ordered union of
// every matching rule, deduplicated by material name (later matches replace
// the value but keep the original position). Tag sets matching nothing get the
// default palette.
func InferMaterials(tags []string) []Material {
	lower := lowerTags(tags)

	var ordered []string
	byName := map[string]Material{}
	for _, rule := range materialRules {
		if !lower[rule.tag] {
			continue
		}
		for _, material := range rule.materials {
			if _, seen := byName[material.Name]; !seen {
				ordered = append(ordered, material.Name)
			}
			byName[material.Name] = material
		}
	}

	if len(ordered) == 0 {
		out := make([]Material, len(defaultMaterials))
		copy(out, defaultMaterials)
		return out
	}

	out := make([]Material, 0, len(ordered))
	for _, name := range ordered {
		out = append(out, byName[name])
	}
	return out
}

// GenerateDesignZones derives three fixed-role zones from the project tags,
// branching into one of four style families. Tag sets outside every family
// yield no zones, which is a valid outcome rather than an error.
func GenerateDesignZones(tags []string) []DesignZone {
	lower := lowerTags(tags)

	switch {
	case lower["residential"] || lower["house"] || lower["villa"]:
		return residentialZones(lower)
	case lower["restaurant"] || lower["bistro"]:
		return restaurantZones(lower)
	case lower["cafe"] || lower["coffee"]:
		return cafeZones(lower)
	case lower["shop"] || lower["store"] || lower["retail"] || lower["boutique"]:
		return retailZones(lower)
	default:
		return nil
	}
}

func residentialZones(lower map[string]bool) []DesignZone {
	style := "contemporary"
	switch {
	case lower["scandinavian"]:
		style = "scandinavian"
	case lower["modern"]:
		style = "modern"
	case lower["stone"]:
		style = "stone"
	}

	livingDesc := "Центральна зона з великими панорамними вікнами, що виходять на сад. Відкритий план дозволяє вільно переміщатися між просторами."
	kitchenDesc := "Сучасна кухня з острівцем та обідньою зоною. Натуральні матеріали та сучасне обладнання."
	livingFeatures := []string{"Natural Light", "Open Plan", "Comfort"}
	switch style {
	case "scandinavian":
		livingDesc = "Світла вітальня з білими стінами та світлим деревом. Панорамні вікна забезпечують максимальне природне світло, створюючи відчуття легкості."
		kitchenDesc = "Мінімалістична кухня з сучасними лініями. Білі фасади та стільниці з натурального каменю."
		livingFeatures = []string{"Natural Light", "White Walls", "Panoramic Views"}
	case "stone":
		livingDesc = "Вітальня з акцентами з натурального каменю та дерева. Великі вікна забезпечують максимальне природне світло."
		kitchenDesc = "Кухня з кам'яними акцентами. Натуральний камінь на робочій поверхні та тепле дерево в шафах."
		livingFeatures = []string{"Natural Light", "Open Plan", "Stone Accents"}
	}

	return []DesignZone{
		{ID: "zone-1", Name: "living", Order: 1, Title: "Living Space", Description: livingDesc, Layout: ZoneLayoutSplit, Features: livingFeatures},
		{ID: "zone-2", Name: "kitchen", Order: 2, Title: "Kitchen & Dining", Description: kitchenDesc, Layout: ZoneLayoutSplitReverse, Features: []string{"Open Concept", "Natural Materials", "Functional Design"}},
		{ID: "zone-3", Name: "bedroom", Order: 3, Title: "Master Bedroom", Description: "Спальна зона з приглушеними тонами та простими лініями. Спокій та релаксація.", Layout: ZoneLayoutCentered},
	}
}

func restaurantZones(lower map[string]bool) []DesignZone {
	style := "classic"
	switch {
	case lower["urban"]:
		style = "urban"
	case lower["garden"] || lower["green"] || lower["biophilic"]:
		style = "garden"
	case lower["dark"] || lower["elegant"]:
		style = "dark"
	}

	hallDesc := "Основна зона ресторану з відкритим планом. Велика кількість природного світла та комфортна атмосфера."
	barDesc := "Барна зона з сучасним обладнанням. Комфортні місця для відпочинку та спілкування."
	hallFeatures := []string{"Natural Light", "Open Kitchen", "Social Seating"}
	switch style {
	case "urban":
		hallDesc = "Головний зал з індустріальними матеріалами - цегла, бетон, метал. Відкритий простір з високими стелями."
		barDesc = "Барна зона з металевими елементами та сучасним обладнанням. Темні тони та індустріальні акценти."
		hallFeatures = []string{"Exposed Brick", "Concrete Floors", "High Ceilings"}
	case "garden":
		hallDesc = "Основна зона з вертикальними садами та зеленими стінами. Багато природного світла та зелених рослин."
		hallFeatures = []string{"Vertical Gardens", "Natural Light", "Plant Walls"}
	case "dark":
		hallDesc = "Головний зал з приглушеним освітленням. Темні стіни, дерево та шкіра створюють інтимну атмосферу."
		barDesc = "Барна зона з мідними акцентами та винним холодильником. Відкритий бар дозволяє спостерігати за барменами."
		hallFeatures = []string{"Ambient Lighting", "Fireplace", "Velvet Seating"}
	}

	return []DesignZone{
		{ID: "zone-1", Name: "dining-hall", Order: 1, Title: "Main Hall / Dining", Description: hallDesc, Layout: ZoneLayoutSplit, Features: hallFeatures},
		{ID: "zone-2", Name: "bar", Order: 2, Title: "Bar Area", Description: barDesc, Layout: ZoneLayoutSplitReverse, Features: []string{"Modern Equipment", "Comfortable Seating", "Quality Lighting"}},
		{ID: "zone-3", Name: "kitchen", Order: 3, Title: "Open Kitchen", Description: "Відкрита кухня з сучасним обладнанням. Гості можуть спостерігати за процесом приготування.", Layout: ZoneLayoutCentered},
	}
}

func cafeZones(lower map[string]bool) []DesignZone {
	style := "modern"
	switch {
	case lower["industrial"]:
		style = "industrial"
	case lower["cozy"]:
		style = "cozy"
	}

	barDesc := "Основна барна зона з сучасним обладнанням. Світлі тони та простий дизайн."
	seatingDesc := "Зона для відпочинку з комфортними столами та кріслами. Світлий та просторий дизайн."
	barFeatures := []string{"Coffee Equipment", "Barista Station", "Bean Selection"}
	switch style {
	case "industrial":
		barDesc = "Основна барна зона з сучасним обладнанням. Відкритий простір дозволяє гостям спостерігати за баристами."
		barFeatures = []string{"Specialty Equipment", "Barista Station", "Bean Bar"}
	case "cozy":
		barDesc = "Основна зона з теплими тонами та м'якими меблями. Затишна атмосфера для відпочинку."
		seatingDesc = "Зона для відпочинку з дерев'яними столами та комфортними кріслами. Рослини додають затишок."
	}

	return []DesignZone{
		{ID: "zone-1", Name: "coffee-bar", Order: 1, Title: "Coffee Bar", Description: barDesc, Layout: ZoneLayoutSplit, Features: barFeatures},
		{ID: "zone-2", Name: "seating", Order: 2, Title: "Cozy Seating", Description: seatingDesc, Layout: ZoneLayoutCentered, Features: []string{"Wood Tables", "Comfortable Chairs", "Greenery"}},
		{ID: "zone-3", Name: "lounge", Order: 3, Title: "Lounge Area", Description: "Лаунж зона з софами та кутками для роботи. Світлі тони та м'яке освітлення.", Layout: ZoneLayoutSplitReverse},
	}
}

func retailZones(lower map[string]bool) []DesignZone {
	style := "retail"
	if lower["boutique"] {
		style = "boutique"
	}

	showroomDesc := "Основний простір магазину з фокусом на продукти. Використання натуральних матеріалів та простий дизайн."
	showroomFeatures := []string{"Product Display", "Natural Materials", "Clear Layout"}
	if style == "boutique" {
		showroomDesc = "Основний шоурум з мінімалістичним дизайном та фокусом на продукти. Світлі тони та чисті лінії."
		showroomFeatures = []string{"Minimal Design", "Product Focus", "Clean Lines"}
	}

	return []DesignZone{
		{ID: "zone-1", Name: "showroom", Order: 1, Title: "Main Showroom", Description: showroomDesc, Layout: ZoneLayoutSplit, Features: showroomFeatures},
		{ID: "zone-2", Name: "fitting", Order: 2, Title: "Fitting Area", Description: "Примерні кімнати з дзеркалами та якісним освітленням. Затишна та приватна атмосфера.", Layout: ZoneLayoutCentered},
		{ID: "zone-3", Name: "checkout", Order: 3, Title: "Checkout Counter", Description: "Оформлення замовлень з брендованими елементами та якісними матеріалами.", Layout: ZoneLayoutSplitReverse},
	}
}

func lowerTags(tags []string) map[string]bool {
	lower := make(map[string]bool, len(tags))
	for _, tag := range tags {
		lower[strings.ToLower(strings.TrimSpace(tag))] = true
	}
	return lower
}
