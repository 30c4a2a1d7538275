package catalog

import "bluevoyager/internal/domain/models"

var faqs = []models.FAQ{
	{ID: 1, Question: "Do I need to be certified to dive with you?", Answer: "No, not necessarily. We offer beginner experiences like Discover Scuba Diving which do not require prior certification. For certified dives (like reef or wreck dives), you will need a valid PADI or equivalent certification."},
	{ID: 2, Question: "What should I bring for my dive?", Answer: "Please bring your certification card (if applicable), swimwear, a towel, sunscreen (reef-safe recommended), and cash or card for any optional purchases. All diving equipment is available for rent."},
	{ID: 3, Question: "What's your cancellation policy?", Answer: "Our standard policy offers free cancellation up to 48 hours before the dive. Cancellations within 48 hours may incur a penalty. Please check the specific policy for multi-day courses or liveaboards at the time of booking."},
	{ID: 4, Question: "Is diving safe for people with medical conditions?", Answer: "For safety, all divers must complete a medical questionnaire. Certain conditions (e.g., asthma, recent surgery) may require a doctor's approval before diving. Please consult us beforehand if you have any concerns."},
	{ID: 5, Question: "How long does a typical dive trip take?", Answer: "A typical two-tank reef dive trip takes about 4-5 hours, including preparation and travel time. Specialty courses or cenote dives may take a full day (6-8 hours)."},
	{ID: 6, Question: "What's the difference between reef diving and cenote diving?", Answer: "Reef diving is done in the ocean, featuring colorful coral, fish, and marine life. Cenote diving is done in unique, freshwater caverns/caves, offering incredible visibility, stunning light effects, and geological formations."},
	{ID: 7, Question: "Do you provide hotel pickup?", Answer: "Yes, we offer complimentary hotel shuttle service from most hotels in Playa del Carmen. Please arrange pickup times when you book your dive or course."},
	{ID: 8, Question: "Can I dive if I can't swim?", Answer: "For safety reasons, basic swimming ability and comfort in the water are required for all certified dives and introductory courses like Discover Scuba Diving."},
	{ID: 9, Question: "What happens if the weather is bad?", Answer: "We prioritize safety. If weather conditions (strong currents, poor visibility) are unsafe, the trip will be rescheduled or a full refund will be provided. Cenote dives are usually unaffected by surface weather."},
	{ID: 10, Question: "Are your instructors certified?", Answer: "Yes, all our instructors are PADI certified and highly experienced professionals who adhere to the strictest safety standards."},
}

var diveSites = []models.DiveSite{
	{Name: "Banana Reef", Difficulty: "All levels", Depth: "5-30m", Type: "Reef"},
	{Name: "Manta Point", Difficulty: "Intermediate", Depth: "6-25m", Type: "Cleaning Station"},
	{Name: "HP Reef", Difficulty: "Advanced", Depth: "8-30m", Type: "Reef & Caves"},
	{Name: "Fish Head", Difficulty: "Advanced", Depth: "15-40m", Type: "Thila"},
	{Name: "Victory Wreck", Difficulty: "Intermediate", Depth: "12-35m", Type: "Wreck"},
	{Name: "Rainbow Reef", Difficulty: "All levels", Depth: "5-30m", Type: "Reef"},
}

var itineraryDays = []models.ItineraryDay{
	{Day: "Day 1", Title: "Arrival & Embarkation Day", Location: "Hulhule", Description: "Transfer from Male International Airport to the dive vessel. Complete check-in formalities, meet your dive guides and fellow divers. Safety briefing and boat orientation."},
	{Day: "Day 2", Title: "North Male Exploration", Location: "Banana Reef & HP Reef", Description: "Morning dive at Banana Reef - the Maldives' most famous dive site featuring stunning coral formations. After surface interval, second dive at HP Reef with its dramatic overhangs."},
	{Day: "Day 3", Title: "Manta Point Adventure", Location: "Manta Point & Lankan", Description: "Early morning dive at Victory Wreck - a 140ft long cargo ship covered in soft corals. Channel dive through Vaadhoo Caves with its stunning swim-throughs."},
	{Day: "Day 4", Title: "Fish Head & Nassimo", Location: "Fish Head", Description: "Encounter schooling fish, grey reef sharks, and colorful soft corals at the world-famous Fish Head. Evening dive at nearby Nassimo Thila."},
	{Day: "Day 5", Title: "Wreck Dive Special", Location: "Girifushi Thila & Kuda Giri", Description: "Explore the fascinating Victory wreck covered in marine growth and teeming with fish life. Afternoon dive at Girifushi Thila followed by a night dive."},
	{Day: "Day 6", Title: "Coral Gardens & Channel", Location: "Rainbow Reef", Description: "Drift diving through vibrant coral gardens and channels. Experience strong currents and abundant marine life in pristine conditions."},
	{Day: "Day 7", Title: "Final Dives and Celebration", Location: "Male", Description: "Relaxing morning dives at Rainbow Reef followed by leisure time. Farewell dinner with crew and fellow divers sharing adventure stories."},
}

func FAQs() []models.FAQ { return faqs }

func DiveSites() []models.DiveSite { return diveSites }

func ItineraryDays() []models.ItineraryDay { return itineraryDays }
