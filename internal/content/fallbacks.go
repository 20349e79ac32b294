package content

// AssetBase prefixes the bundled images used when nothing is configured.
const AssetBase = "/assets/"

func asset(name string) string { return AssetBase + name }

const (
	attendProDescription = "AttendPro is a smart attendance solution for field teams. It verifies on-site presence with selfie check-ins, GPS and time stamps, and only marks attendance after 7 working hours, keeping records accurate and tamper-proof."
	varanasiDescription  = "Deployed at Varanasi Nagar Nigam, AttendPro ensures every check-in is real with selfie verification, GPS location, and time-stamped records. Attendance is only marked after completing 7 working hours, bringing discipline and accountability to the workforce. As a result, workers now reach job sites on time, productivity has significantly improved, and fake attendance has been completely stopped — helping the civic body save ₹30–40 lakhs every month while improving public service delivery."
	productsSubheading   = "We specialize in creating groundbreaking products that optimize operations, stimulate growth, and pave the way for unparalleled success across diverse sectors"
)

var fallbackHero = HeroProps{
	Title:        "Delivering Technology That Powers the Next Generation of Public & Enterprise Services",
	Subtitle:     "From AI to IoT, we turn modern technology into real transformation — smarter operations, seamless experiences, and measurable growth.",
	ButtonText:   "Learn More",
	ButtonLink:   "#",
	Main1:        asset("main1.png"),
	Main2:        asset("main2.png"),
	Main3:        asset("main3.png"),
	PartnerText:  "We're proud to partner with the best",
	PartnerLogos: []string{asset("keystone.png"), asset("mis.jpg"), asset("tapestry.jpg"), asset("agency.png"), asset("lig.png"), asset("horizon.png")},
}

var fallbackAbout = AboutProps{
	Heading:    "Our Areas of Expertise",
	Subheading: "We provide tailored solutions that drive success and address challenges in an ever-evolving world.",
	Cards: []Card{
		{Title: "Artificial Intelligence", Description: "We help businesses use AI to work more efficiently and think ahead. From automating everyday tasks to analyzing complex data and building intelligent chatbots — our AI solutions are designed to make technology work for you. We turn data into insights, and insights into action."},
		{Title: "Custom Software Development", Description: "We guide organizations through every step of their digital journey — modernizing processes, adopting the right tools, and improving how teams and customers connect. Whether you’re upgrading internal systems or creating new digital experiences, we help you move from “how it’s done” to “how it should be."},
		{Title: "Digital Transformation", Description: "Your business has its own rhythm — your software should match it. Our team designs and develops custom applications that fit your exact needs, from workflow automation to large-scale enterprise platforms. Every line of code we write aims to make your work simpler, faster, and smarter."},
		{Title: "Internet of Things (IoT)", Description: "We create IoT solutions that bring your physical and digital worlds together. From smart sensors and connected devices to real-time monitoring dashboards, we help businesses gain control, visibility, and efficiency like never before. It’s technology that listens, learns, and acts — in real time."},
	},
}

var fallbackProducts = ProductsProps{
	Heading:    "Our Products",
	Subheading: productsSubheading + ".",
	Cards: []ProductCard{
		{Title: "Smart Attendance System", Subtitle: "AttendPro", Description: attendProDescription, Bg: "bg-1", Images: asset("product1.png")},
		{Title: "Sanitation Management System", Subtitle: "SMART", Description: attendProDescription, Bg: "bg-2", Images: asset("product2.png")},
		{Title: "Vehicle Management System", Subtitle: "AutoPro", Description: attendProDescription, Bg: "bg-3", Images: asset("product3.png")},
	},
}

var fallbackSolutions = SolutionsProps{
	Heading:    "Success Stories",
	Subheading: productsSubheading,
	Slides: []Slide{
		{Title: "AttendPro — Smarter Attendance for Field Teams", Description: varanasiDescription},
		{Title: "AttendPro — Smarter Attendance for Field Teams", Description: varanasiDescription},
		{Title: "AttendPro — Smarter Attendance for Field Teams", Description: varanasiDescription},
	},
}

var fallbackImageGrid = ImageGridProps{
	Experience: Tile{Image: asset("experience.jpg"), Link: "#", Label: "Experience"},
	Insight:    Tile{Image: asset("insight.jpg"), Link: "#", Label: "Insight"},
	Innovate:   Tile{Image: asset("innovate.jpg"), Link: "#", Label: "Innovate"},
	Accelerate: Tile{Image: asset("accelerate.jpg"), Link: "#", Label: "Accelerate"},
	Assure:     Tile{Image: asset("assure.jpg"), Link: "#", Label: "Assure"},
}

var fallbackContact = ContactProps{
	Heading: "Contact us",
	Offices: []Office{
		{Label: "Corporate Office"},
		{Label: "Registered Office"},
	},
	ContactInfoTitle: "Contact Information",
	GetInTouchTitle:  "Get in touch with us",
}

var fallbackAboutHero = AboutHeroProps{
	Image: "https://images.unsplash.com/photo-1503676260728-1c00da094a0b?auto=format&fit=crop&w=1600&q=60",
	Line1: "THE ROAD TO SUCCESS IS A LOT EASIER",
	Line2: "when You are Working with a Pro",
}

var fallbackAboutOverview = AboutOverviewProps{
	Title: "About Student Profile Pro",
	Image: "https://images.unsplash.com/photo-1581090464777-f3220bbe1b8b?auto=format&fit=crop&w=800&q=60",
	Paragraphs: []string{
		"We believe that every high school student deserves to be seen as more than just grades and certificates.",
		"Our services help students create and amplify a personalised digital profile that captures the essence of your passions, achievements and potential.",
		"In a world where every student is chasing top scores, what sets you apart is your authentic story and strengths.",
	},
}

var fallbackAboutMission = AboutMissionProps{
	Title: "Our Mission",
	Image: "https://images.unsplash.com/photo-1515165562835-c3b8c2e62a68?auto=format&fit=crop&w=900&q=60",
	Text:  "Helping students craft a digital identity that goes beyond test scores—highlighting desires, extracurricular achievements and true personality.",
}

var fallbackAboutStarted = AboutStartedProps{
	Title: "How we Started",
	Image: "https://images.unsplash.com/photo-1527980965255-d3b416303d12?auto=format&fit=crop&w=800&q=60",
	Lead:  "Student Profile Pro was founded with a clear vision: help students discover their potential using digital media.",
	Text:  "Working with students across India and the US, we noticed a gap: many focused on exams, but few used digital media to showcase themselves meaningfully. We’re changing that.",
}

var fallbackFooter = FooterProps{
	Products: []Link{
		{Text: "AttendPro - Smart Attendance System", Link: "#"},
		{Text: "Smart - Sanitation Management System", Link: "#"},
		{Text: "AutoPro - Vehicle Management System", Link: "#"},
	},
	Solutions: []Link{
		{Text: "Artificial Intelligence", Link: "#"},
		{Text: "Custom Software Development", Link: "#"},
		{Text: "Digital Transformation", Link: "#"},
		{Text: "Internet of Things (IoT)", Link: "#"},
	},
	Company: []Link{
		{Text: "About", Link: "#"},
		{Text: "Awards", Link: "#"},
		{Text: "Leadership Team", Link: "#"},
		{Text: "Case Study", Link: "#"},
		{Text: "Our Clients", Link: "#"},
		{Text: "Newsroom", Link: "#"},
		{Text: "Careers", Link: "#"},
		{Text: "Contact", Link: "#"},
	},
}

const fallbackLogo = AssetBase + "logo_suffix.png"
