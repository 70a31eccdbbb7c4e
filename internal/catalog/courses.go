package catalog

import "github.com/dishalabs/disha/internal/riasec"

// builtinCourses is the static recommendation pool. Codes are stable and
// unique; ordering in recommendations is always by rank then code.
var builtinCourses = []Course{
	{Code: "SCI-PCM-01", Name: "Physics, Chemistry, Mathematics", Stream: "Science (PCM)", Domains: []riasec.Domain{riasec.Realistic, riasec.Investigative}},
	{Code: "SCI-PCM-02", Name: "Computer Science elective", Stream: "Science (PCM)", Domains: []riasec.Domain{riasec.Investigative, riasec.Conventional}},
	{Code: "SCI-PCM-03", Name: "Engineering Drawing", Stream: "Science (PCM)", Domains: []riasec.Domain{riasec.Realistic}},
	{Code: "SCI-PCB-01", Name: "Physics, Chemistry, Biology", Stream: "Science (PCB)", Domains: []riasec.Domain{riasec.Investigative, riasec.Social}},
	{Code: "SCI-PCB-02", Name: "Biotechnology elective", Stream: "Science (PCB)", Domains: []riasec.Domain{riasec.Investigative}},
	{Code: "SCI-GEN-01", Name: "Integrated Science foundation", Stream: "Science", Domains: []riasec.Domain{riasec.Investigative}},
	{Code: "COM-01", Name: "Accountancy, Business Studies, Economics", Stream: "Commerce", Domains: []riasec.Domain{riasec.Enterprising, riasec.Conventional}},
	{Code: "COM-02", Name: "Commerce with Mathematics", Stream: "Commerce", Domains: []riasec.Domain{riasec.Conventional, riasec.Investigative}},
	{Code: "COM-03", Name: "Entrepreneurship elective", Stream: "Commerce", Domains: []riasec.Domain{riasec.Enterprising}},
	{Code: "HUM-01", Name: "History, Political Science, Sociology", Stream: "Humanities", Domains: []riasec.Domain{riasec.Social, riasec.Enterprising}},
	{Code: "HUM-02", Name: "Psychology elective", Stream: "Humanities", Domains: []riasec.Domain{riasec.Social, riasec.Investigative}},
	{Code: "HUM-03", Name: "Mass Communication basics", Stream: "Humanities", Domains: []riasec.Domain{riasec.Artistic, riasec.Enterprising}},
	{Code: "ART-01", Name: "Fine Arts studio practice", Stream: "Fine Arts", Domains: []riasec.Domain{riasec.Artistic}},
	{Code: "ART-02", Name: "Music and performance", Stream: "Fine Arts", Domains: []riasec.Domain{riasec.Artistic, riasec.Social}},
	{Code: "ART-03", Name: "Design and visual communication", Stream: "Fine Arts", Domains: []riasec.Domain{riasec.Artistic, riasec.Conventional}},
	{Code: "VOC-01", Name: "Vocational: workshop technology", Stream: "Vocational", Domains: []riasec.Domain{riasec.Realistic}},
	{Code: "VOC-02", Name: "Vocational: healthcare assistance", Stream: "Vocational", Domains: []riasec.Domain{riasec.Social, riasec.Realistic}},
	{Code: "VOC-03", Name: "Vocational: office and records practice", Stream: "Vocational", Domains: []riasec.Domain{riasec.Conventional}},
	{Code: "GEN-01", Name: "General studies sampler", Stream: "Exploratory", Domains: riasec.Alphabet},
}
