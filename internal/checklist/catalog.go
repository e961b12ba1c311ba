package checklist

// taskTemplates is the static planning catalogue. Order matters: it is the
// tie-break for items that end up with the same due date. The catalogue is
// read-only at run time; Generate copies fields into items and never hands
// out references into this slice.
var taskTemplates = []TaskTemplate{
	// Základní plánování
	{
		Title:           "Stanovit celkový rozpočet",
		Description:     "Projděte si finance a určete, kolik můžete na svatbu vynaložit.",
		Category:        CategoryAdmin,
		IdealLeadMonths: 12,
		MinLeadWeeks:    4,
		ApplicableSizes: []Size{SizeSmall, SizeMedium, SizeLarge},
		BasePriority:    PriorityHigh,
	},
	{
		Title:           "Vytvořit hrubý seznam hostů",
		Description:     "Sepište všechny, které byste rádi pozvali. Finální seznam uděláte později.",
		Category:        CategoryGuests,
		IdealLeadMonths: 12,
		MinLeadWeeks:    8,
		ApplicableSizes: []Size{SizeSmall, SizeMedium, SizeLarge},
		BasePriority:    PriorityHigh,
	},
	{
		Title:           "Vybrat datum svatby",
		Description:     "Zvolte 2-3 možná data s ohledem na dostupnost míst.",
		Category:        CategoryAdmin,
		IdealLeadMonths: 12,
		MinLeadWeeks:    12,
		ApplicableSizes: []Size{SizeSmall, SizeMedium, SizeLarge},
		BasePriority:    PriorityUrgent,
	},

	// Místa
	{
		Title:           "Rezervovat místo obřadu",
		Description:     "Kontaktujte matriku, kostel nebo jiné místo obřadu.",
		Category:        CategoryVenue,
		IdealLeadMonths: 10,
		MinLeadWeeks:    8,
		ApplicableSizes: []Size{SizeSmall, SizeMedium, SizeLarge},
		BasePriority:    PriorityUrgent,
	},
	{
		Title:           "Rezervovat místo hostiny",
		Description:     "Oblíbená místa se rezervují i rok dopředu.",
		Category:        CategoryVenue,
		IdealLeadMonths: 10,
		MinLeadWeeks:    6,
		ApplicableSizes: []Size{SizeSmall, SizeMedium, SizeLarge},
		BasePriority:    PriorityUrgent,
	},

	// Dodavatelé
	{
		Title:           "Vybrat a rezervovat fotografa",
		Description:     "Projděte portfolia, domluvte schůzku. Dobří fotografové jsou rychle pryč.",
		Category:        CategoryVendors,
		IdealLeadMonths: 9,
		MinLeadWeeks:    6,
		ApplicableSizes: []Size{SizeSmall, SizeMedium, SizeLarge},
		BasePriority:    PriorityHigh,
	},
	{
		Title:           "Vybrat a rezervovat kameramana",
		Description:     "Pokud chcete svatební video.",
		Category:        CategoryVendors,
		IdealLeadMonths: 9,
		MinLeadWeeks:    6,
		ApplicableSizes: []Size{SizeMedium, SizeLarge},
		BasePriority:    PriorityMedium,
	},
	{
		Title:           "Vybrat hudbu/kapelu/DJ",
		Description:     "Rozhodněte, jakou hudbu chcete na obřad a na večer.",
		Category:        CategoryVendors,
		IdealLeadMonths: 8,
		MinLeadWeeks:    4,
		ApplicableSizes: []Size{SizeSmall, SizeMedium, SizeLarge},
		BasePriority:    PriorityHigh,
	},
	{
		Title:           "Vybrat catering nebo menu",
		Description:     "Domluvte se s místem hostiny nebo externím cateringem.",
		Category:        CategoryVendors,
		IdealLeadMonths: 6,
		MinLeadWeeks:    4,
		ApplicableSizes: []Size{SizeSmall, SizeMedium, SizeLarge},
		BasePriority:    PriorityHigh,
	},
	{
		Title:           "Objednat svatební dort",
		Description:     "Dobrá cukrárna potřebuje rezervaci několik měsíců dopředu.",
		Category:        CategoryVendors,
		IdealLeadMonths: 4,
		MinLeadWeeks:    3,
		ApplicableSizes: []Size{SizeSmall, SizeMedium, SizeLarge},
		BasePriority:    PriorityMedium,
	},

	// Oblečení
	{
		Title:           "Vybrat svatební šaty",
		Description:     "Začněte s dostatečným předstihem - úpravy trvají.",
		Category:        CategoryAttire,
		IdealLeadMonths: 8,
		MinLeadWeeks:    6,
		ApplicableSizes: []Size{SizeSmall, SizeMedium, SizeLarge},
		BasePriority:    PriorityHigh,
	},
	{
		Title:           "Vybrat oblek pro ženicha",
		Description:     "Koupě nebo půjčovna? Nezapomeňte na doplňky.",
		Category:        CategoryAttire,
		IdealLeadMonths: 6,
		MinLeadWeeks:    4,
		ApplicableSizes: []Size{SizeSmall, SizeMedium, SizeLarge},
		BasePriority:    PriorityHigh,
	},
	{
		Title:           "Objednat snubní prsteny",
		Description:     "Gravírování může trvat několik týdnů.",
		Category:        CategoryAttire,
		IdealLeadMonths: 4,
		MinLeadWeeks:    4,
		ApplicableSizes: []Size{SizeSmall, SizeMedium, SizeLarge},
		BasePriority:    PriorityHigh,
	},
	{
		Title:           "Zkouška šatů",
		Description:     "Poslední úpravy a ujištění, že vše sedí.",
		Category:        CategoryAttire,
		IdealLeadMonths: 1,
		MinLeadWeeks:    2,
		ApplicableSizes: []Size{SizeSmall, SizeMedium, SizeLarge},
		BasePriority:    PriorityHigh,
	},

	// Hosté
	{
		Title:           "Rozeslat save-the-date",
		Description:     "Informujte hosty o datu, hlavně ty vzdálené.",
		Category:        CategoryGuests,
		IdealLeadMonths: 8,
		MinLeadWeeks:    12,
		ApplicableSizes: []Size{SizeMedium, SizeLarge},
		BasePriority:    PriorityMedium,
	},
	{
		Title:           "Finalizovat seznam hostů",
		Description:     "Definitivní seznam pro pozvánky.",
		Category:        CategoryGuests,
		IdealLeadMonths: 4,
		MinLeadWeeks:    8,
		ApplicableSizes: []Size{SizeSmall, SizeMedium, SizeLarge},
		BasePriority:    PriorityHigh,
	},
	{
		Title:           "Objednat a rozeslat pozvánky",
		Description:     "Tištěné nebo elektronické? Nezapomeňte na RSVP.",
		Category:        CategoryGuests,
		IdealLeadMonths: 3,
		MinLeadWeeks:    6,
		ApplicableSizes: []Size{SizeSmall, SizeMedium, SizeLarge},
		BasePriority:    PriorityHigh,
	},
	{
		Title:           "Připravit svatební web pro hosty",
		Description:     "Všechny info na jednom místě - program, mapa, RSVP.",
		Category:        CategoryGuests,
		IdealLeadMonths: 3,
		MinLeadWeeks:    4,
		ApplicableSizes: []Size{SizeSmall, SizeMedium, SizeLarge},
		BasePriority:    PriorityMedium,
	},
	{
		Title:           "Připravit zasedací pořádek",
		Description:     "Kdo bude sedět kde? Rodinná diplomacie.",
		Category:        CategoryGuests,
		IdealLeadMonths: 1,
		MinLeadWeeks:    1,
		ApplicableSizes: []Size{SizeMedium, SizeLarge},
		BasePriority:    PriorityMedium,
	},

	// Dekorace a květiny
	{
		Title:           "Vybrat floristku/květiny",
		Description:     "Kytice, výzdoba stolů, květinová brána...",
		Category:        CategoryDecor,
		IdealLeadMonths: 4,
		MinLeadWeeks:    3,
		ApplicableSizes: []Size{SizeSmall, SizeMedium, SizeLarge},
		BasePriority:    PriorityMedium,
	},
	{
		Title:           "Naplánovat dekorace",
		Description:     "Barvy, styl, co kde bude. Koordinujte s místem.",
		Category:        CategoryDecor,
		IdealLeadMonths: 3,
		MinLeadWeeks:    2,
		ApplicableSizes: []Size{SizeSmall, SizeMedium, SizeLarge},
		BasePriority:    PriorityMedium,
	},

	// Obřad
	{
		Title:           "Vybrat oddávajícího",
		Description:     "Matrikář, farář, nebo civilní obřad?",
		Category:        CategoryCeremony,
		IdealLeadMonths: 6,
		MinLeadWeeks:    4,
		ApplicableSizes: []Size{SizeSmall, SizeMedium, SizeLarge},
		BasePriority:    PriorityHigh,
	},
	{
		Title:           "Napsat svatební sliby",
		Description:     "Pokud chcete vlastní sliby místo tradičních.",
		Category:        CategoryCeremony,
		IdealLeadMonths: 2,
		MinLeadWeeks:    1,
		ApplicableSizes: []Size{SizeSmall, SizeMedium, SizeLarge},
		BasePriority:    PriorityLow,
	},
	{
		Title:           "Svatební zkouška",
		Description:     "Projděte si průběh obřadu na místě.",
		Category:        CategoryCeremony,
		IdealLeadMonths: 0.5,
		MinLeadWeeks:    0.5,
		ApplicableSizes: []Size{SizeSmall, SizeMedium, SizeLarge},
		BasePriority:    PriorityMedium,
	},

	// Dokumenty
	{
		Title:           "Vyřídit dokumenty na matrice",
		Description:     "Dotazník k uzavření manželství, potřebné dokumenty.",
		Category:        CategoryAdmin,
		IdealLeadMonths: 2,
		MinLeadWeeks:    2,
		ApplicableSizes: []Size{SizeSmall, SizeMedium, SizeLarge},
		BasePriority:    PriorityHigh,
	},
	{
		Title:           "Naplánovat líbánky",
		Description:     "Kam pojedete? Rezervujte včas.",
		Category:        CategoryAdmin,
		IdealLeadMonths: 6,
		MinLeadWeeks:    4,
		ApplicableSizes: []Size{SizeSmall, SizeMedium, SizeLarge},
		BasePriority:    PriorityMedium,
	},

	// Poslední týden
	{
		Title:           "Potvrdit finální počet hostů",
		Description:     "Sdělte cateringu finální čísla.",
		Category:        CategoryGuests,
		IdealLeadMonths: 0.25,
		MinLeadWeeks:    0.5,
		ApplicableSizes: []Size{SizeSmall, SizeMedium, SizeLarge},
		BasePriority:    PriorityUrgent,
	},
	{
		Title:           "Připravit timeline dne D",
		Description:     "Kdy co bude, kdo za co zodpovídá.",
		Category:        CategoryAdmin,
		IdealLeadMonths: 0.25,
		MinLeadWeeks:    0.5,
		ApplicableSizes: []Size{SizeSmall, SizeMedium, SizeLarge},
		BasePriority:    PriorityHigh,
	},
	{
		Title:           "Potvrdit všechny dodavatele",
		Description:     "Poslední check - všichni vědí kdy a kde.",
		Category:        CategoryVendors,
		IdealLeadMonths: 0.25,
		MinLeadWeeks:    0.5,
		ApplicableSizes: []Size{SizeSmall, SizeMedium, SizeLarge},
		BasePriority:    PriorityUrgent,
	},
	{
		Title:           "Sbalit věci na líbánky",
		Description:     "Ať nemusíte řešit po svatbě.",
		Category:        CategoryAdmin,
		IdealLeadMonths: 0.1,
		MinLeadWeeks:    0.1,
		ApplicableSizes: []Size{SizeSmall, SizeMedium, SizeLarge},
		BasePriority:    PriorityLow,
	},
}
