package schedule

// Table is an immutable weekly programming table. Declaration order is
// significant: when two windows overlap, the earlier entry wins.
type Table struct {
	shows []ShowDefinition
}

func New(shows []ShowDefinition) Table {
	return Table{shows: shows}
}

// Default returns the Radio 47 weekly programming table.
func Default() Table {
	return New(radio47Shows)
}

var monTueThuFri = []Weekday{Monday, Tuesday, Thursday, Friday}

var radio47Shows = []ShowDefinition{
	// Monday, Tuesday, Thursday, Friday shows
	{
		Name:        "Nuru 47",
		Host:        "Eva Mwalili",
		Window:      MustWindow("04:00 - 06:00"),
		Days:        monTueThuFri,
		Description: "A motivational show to inspire listeners as they start their day.",
		Image:       "nuru.png",
	},
	{
		Name:        "Breakfast 47",
		Host:        "Emmanuel Mwashumbe and Alex Mwakideu",
		Window:      MustWindow("06:00 - 10:00"),
		Days:        monTueThuFri,
		Description: "A lively breakfast show combining fun with current affairs and social issues.",
		Image:       "default.png",
	},
	{
		Name:        "Mchikicho",
		Host:        "Mkamburi Chigogo and MC Japhe",
		Window:      MustWindow("10:00 - 13:00"),
		Days:        monTueThuFri,
		Description: "An interactive mid-morning show blending entertainment and serious topics.",
		Image:       "mchikicho.png",
	},
	{
		Name:        "Baze 47",
		Host:        "Manucho",
		Window:      MustWindow("13:00 - 15:00"),
		Days:        monTueThuFri,
		Description: "Focuses on entertainment, celebrities, and trending topics.",
		Image:       "Baze47.png",
	},
	{
		Name:        "Maskani",
		Host:        "Billy Miya & Mbaruk Mwalimu",
		Window:      MustWindow("15:00 - 19:00"),
		Days:        monTueThuFri,
		Description: "A drive show with humor and insights on various issues.",
		Image:       "Maskani.png",
	},
	{
		Name:        "Chemba",
		Host:        "Dr. Ofweneke",
		Window:      MustWindow("19:00 - 22:00"),
		Days:        monTueThuFri,
		Description: "Addresses relationship issues through engaging discussions.",
		Image:       "Chemba.png",
	},
	{
		Name:        "Rhumba Fix",
		Host:        "Cate Kulo",
		Window:      MustWindow("22:00 - 01:00"),
		Days:        monTueThuFri,
		Description: "An interactive night show blending relaxing rhumba music and serious topics",
		Image:       "rhumbafix.png",
	},

	// Wednesday shows
	{
		Name:        "Nuru 47",
		Host:        "Eva Mwalili",
		Window:      MustWindow("04:00 - 06:00"),
		Days:        []Weekday{Wednesday},
		Description: "A motivational show to inspire listeners as they start their day.",
		Image:       "nuru.png",
	},
	{
		Name:        "Breakfast 47",
		Host:        "Emmanuel Mwashumbe and Alex Mwakideu",
		Window:      MustWindow("06:00 - 10:00"),
		Days:        []Weekday{Wednesday},
		Description: "A lively breakfast show combining fun with current affairs and social issues.",
		Image:       "default.png",
	},
	{
		Name:        "Mchikicho",
		Host:        "Mwanaisha Chidzuga",
		Window:      MustWindow("10:00 - 13:00"),
		Days:        []Weekday{Wednesday},
		Description: "An interactive mid-morning show blending entertainment and serious topics.",
		Image:       "mchikicho.png",
	},
	{
		Name:        "Baze 47",
		Host:        "Manucho the Young Turk",
		Window:      MustWindow("13:00 - 15:00"),
		Days:        []Weekday{Wednesday},
		Description: "Focuses on entertainment, celebrities, and trending topics.",
		Image:       "Baze47.png",
	},
	{
		Name:        "Maskani",
		Host:        "Billy Miya & Mbaruk Mwalimu",
		Window:      MustWindow("15:00 - 19:00"),
		Days:        []Weekday{Wednesday},
		Description: "A drive show with humor and insights on various issues.",
		Image:       "Maskani.png",
	},
	{
		Name:        "Kikao Cha Hoja",
		Host:        "Liz Mutuku",
		Window:      MustWindow("19:00 - 21:00"),
		Days:        []Weekday{Wednesday},
		Description: "A political talk show featuring policymakers and discussions on current issues.",
		Image:       "kikaochahoja.png",
	},
	{
		Name:        "Chemba",
		Host:        "Dr. Ofweneke",
		Window:      MustWindow("21:00 - 22:00"),
		Days:        []Weekday{Wednesday},
		Description: "Addresses relationship issues through engaging discussions.",
		Image:       "Chemba.png",
	},
	{
		Name:        "Rhumba Fix",
		Host:        "Cate Kulo",
		Window:      MustWindow("22:00 - 01:00"),
		Days:        []Weekday{Wednesday},
		Description: "An interactive night show blending relaxing rhumba music and serious topics",
		Image:       "rhumbafix.png",
	},

	// Saturday shows
	{
		Name:        "Sabato Yako",
		Host:        "Automated SDA Music Show",
		Window:      MustWindow("04:00 - 06:00"),
		Days:        []Weekday{Saturday},
		Description: "An automated SDA Music Show on Radio 47.",
		Image:       "default.png",
	},
	{
		Name:        "Bahari Ya Elimu",
		Host:        "Ali Hassan Kauleni",
		Window:      MustWindow("07:00 - 11:00"),
		Days:        []Weekday{Saturday},
		Description: "An interactive, educative, and entertaining show targeting students, teachers, and institutions.",
		Image:       "Bahariyaelimu.png",
	},
	{
		Name:        "Sato Vibe",
		Host:        "Mkamburi Chigogo Na Deejay Darvo",
		Window:      MustWindow("11:00 - 14:00"),
		Days:        []Weekday{Saturday},
		Description: "A lively program focusing on music and discussions on trending topics.",
		Image:       "Satovibe.png",
	},
	{
		Name:        "Dread Beat Reloaded",
		Host:        "Radio 47 DJ",
		Window:      MustWindow("14:00 - 16:00"),
		Days:        []Weekday{Saturday},
		Description: "Good energy, positive vibrations, consciousness, and positive vibes.",
		Image:       "Dreadbeat.png",
	},
	{
		Name:        "Mikiki Ya Spoti",
		Host:        "Fred Arocho, Ali Hassan Kauleni, Lucky Herriano",
		Window:      MustWindow("16:00 - 20:00"),
		Days:        []Weekday{Saturday},
		Description: "Crème de la crème of sports journalism with superior sports content, high energy, and humor.",
		Image:       "default.png",
	},
	{
		Name:        "Burdan Satoo",
		Host:        "Manucho",
		Window:      MustWindow("20:00 - 00:00"),
		Days:        []Weekday{Saturday},
		Description: "A radio show for armchair clubbers featuring the best mix of music from great DJs, hook-ups, plus great and daring conversations.",
		Image:       "default.png",
	},

	// Sunday shows
	{
		Name:        "Radio 47 Jumapili",
		Host:        "Eva Mwalili",
		Window:      MustWindow("05:00 - 10:00"),
		Days:        []Weekday{Sunday},
		Description: "Targets to inspire listeners as they start their Sunday.",
		Image:       "Nuru47Jumapili.png",
	},
	{
		Name:        "Gospel Automation",
		Host:        "Automated Christian Music",
		Window:      MustWindow("10:00 - 13:00"),
		Days:        []Weekday{Sunday},
		Description: "Automation of Christian music that has both inspired and drawn from popular music traditions.",
		Image:       "default.png",
	},
	{
		Name:        "Dread Beat Reloaded",
		Host:        "Radio 47 DJ",
		Window:      MustWindow("13:00 - 16:00"),
		Days:        []Weekday{Sunday},
		Description: "Good energy, positive vibrations, consciousness, and positive vibes.",
		Image:       "default.png",
	},
	{
		Name:        "Mikiki Ya Spoti",
		Host:        "Fred Arocho, Ali Hassan Kauleni, Lucky Herriano",
		Window:      MustWindow("16:00 - 20:00"),
		Days:        []Weekday{Sunday},
		Description: "Crème de la crème of sports journalism with superior sports content, high energy, and humor.",
		Image:       "default.png",
	},
	{
		Name:        "Kali Za Kale",
		Host:        "John Maloba",
		Window:      MustWindow("20:00 - 22:00"),
		Days:        []Weekday{Sunday},
		Description: "Two hours of the greatest golden oldies for some nostalgic memories.",
		Image:       "default.png",
	},
}
