package mapping

// Stream names used across the table.
const (
	streamSciencePCM = "Science (PCM)"
	streamSciencePCB = "Science (PCB)"
	streamScience    = "Science"
	streamCommerce   = "Commerce"
	streamHumanities = "Humanities"
	streamFineArts   = "Fine Arts"
	streamVocational = "Vocational"
)

type pairEntry struct {
	stream string
	fields []string
}

// pairTable covers every ordered (primary, secondary) pair, same-domain
// pairs included. Order matters: (R,I) leans practical-first, (I,R)
// analytical-first.
var pairTable = map[string]pairEntry{
	// Realistic primary.
	"RR": {streamSciencePCM, []string{"Mechanical Engineering", "Civil Engineering", "Skilled Trades", "Agriculture Technology"}},
	"RI": {streamSciencePCM, []string{"Robotics", "Mechatronics", "Automotive Engineering", "Energy Systems"}},
	"RA": {streamVocational, []string{"Product Design", "Carpentry and Craft", "Set Construction", "Industrial Design"}},
	"RS": {streamVocational, []string{"Physiotherapy", "Sports Science", "Emergency Services", "Technical Training"}},
	"RE": {streamCommerce, []string{"Construction Management", "Logistics", "Real Estate", "Agribusiness"}},
	"RC": {streamSciencePCM, []string{"Surveying", "Quality Control", "Aviation Maintenance", "Drafting"}},

	// Investigative primary.
	"II": {streamScience, []string{"Research Science", "Mathematics", "Astronomy", "Medicine"}},
	"IR": {streamSciencePCM, []string{"Engineering Research", "Applied Physics", "Materials Science", "Instrumentation"}},
	"IA": {streamScience, []string{"Architecture", "Data Visualization", "UX Research", "Scientific Illustration"}},
	"IS": {streamSciencePCB, []string{"Medicine", "Psychology", "Public Health", "Biomedical Research"}},
	"IE": {streamCommerce, []string{"Data Science", "Actuarial Science", "Market Research", "Technology Entrepreneurship"}},
	"IC": {streamSciencePCM, []string{"Computer Science", "Statistics", "Laboratory Science", "Cryptography"}},

	// Artistic primary.
	"AA": {streamFineArts, []string{"Fine Arts", "Music", "Creative Writing", "Film"}},
	"AR": {streamFineArts, []string{"Sculpture", "Animation", "Fashion Technology", "Stagecraft"}},
	"AI": {streamHumanities, []string{"Game Design", "Architecture", "Digital Media", "Design Research"}},
	"AS": {streamHumanities, []string{"Performing Arts", "Art Education", "Journalism", "Art Therapy"}},
	"AE": {streamHumanities, []string{"Advertising", "Media Production", "Brand Design", "Entertainment Management"}},
	"AC": {streamHumanities, []string{"Graphic Design", "Publishing", "Curation", "Interior Design"}},

	// Social primary.
	"SS": {streamHumanities, []string{"Teaching", "Counselling", "Social Work", "Nursing"}},
	"SR": {streamVocational, []string{"Physiotherapy", "Occupational Therapy", "Sports Coaching", "Community Health"}},
	"SI": {streamSciencePCB, []string{"Psychology", "Medicine", "Speech Therapy", "Epidemiology"}},
	"SA": {streamHumanities, []string{"Education", "Communication", "Human Development", "Expressive Therapies"}},
	"SE": {streamCommerce, []string{"Human Resources", "Public Relations", "Hospitality", "Non-profit Management"}},
	"SC": {streamCommerce, []string{"Healthcare Administration", "School Administration", "Library Science", "Customer Operations"}},

	// Enterprising primary.
	"EE": {streamCommerce, []string{"Business Management", "Entrepreneurship", "Sales Leadership", "Public Policy"}},
	"ER": {streamCommerce, []string{"Operations Management", "Supply Chain", "Construction Business", "Franchise Ownership"}},
	"EI": {streamCommerce, []string{"Product Management", "Consulting", "Financial Technology", "Business Analytics"}},
	"EA": {streamCommerce, []string{"Marketing", "Advertising", "Event Management", "Media Business"}},
	"ES": {streamCommerce, []string{"Human Resources", "Public Administration", "Hospitality Management", "Retail Leadership"}},
	"EC": {streamCommerce, []string{"Finance", "Banking", "Project Management", "Company Secretaryship"}},

	// Conventional primary.
	"CC": {streamCommerce, []string{"Accounting", "Auditing", "Banking Operations", "Records Management"}},
	"CR": {streamVocational, []string{"Quality Assurance", "Inventory Control", "Technical Documentation", "Logistics Operations"}},
	"CI": {streamCommerce, []string{"Data Analysis", "Actuarial Science", "Taxation", "Statistics"}},
	"CA": {streamCommerce, []string{"Desktop Publishing", "Archiving", "Printing Technology", "Content Operations"}},
	"CS": {streamCommerce, []string{"Office Administration", "Banking Services", "Insurance", "Public Records"}},
	"CE": {streamCommerce, []string{"Corporate Finance", "Compliance", "Chartered Accountancy", "Office Management"}},
}
