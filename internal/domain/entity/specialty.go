package entity

// Specialty is an entry of the fixed specialty catalog shown as filter checkboxes.
// Display is the value matched against Doctor.Specialties, ID is safe for HTML ids.
type Specialty struct {
	Display string
	ID      string
}

var SpecialtyCatalog = []Specialty{
	{Display: "General Physician", ID: "General-Physician"},
	{Display: "Dentist", ID: "Dentist"},
	{Display: "Dermatologist", ID: "Dermatologist"},
	{Display: "Paediatrician", ID: "Paediatrician"},
	{Display: "Gynaecologist", ID: "Gynaecologist"},
	{Display: "ENT", ID: "ENT"},
	{Display: "Diabetologist", ID: "Diabetologist"},
	{Display: "Cardiologist", ID: "Cardiologist"},
	{Display: "Physiotherapist", ID: "Physiotherapist"},
	{Display: "Endocrinologist", ID: "Endocrinologist"},
	{Display: "Orthopaedic", ID: "Orthopaedic"},
	{Display: "Ophthalmologist", ID: "Ophthalmologist"},
	{Display: "Gastroenterologist", ID: "Gastroenterologist"},
	{Display: "Pulmonologist", ID: "Pulmonologist"},
	{Display: "Psychiatrist", ID: "Psychiatrist"},
	{Display: "Urologist", ID: "Urologist"},
	{Display: "Dietitian/Nutritionist", ID: "Dietitian-Nutritionist"},
	{Display: "Psychologist", ID: "Psychologist"},
	{Display: "Sexologist", ID: "Sexologist"},
	{Display: "Nephrologist", ID: "Nephrologist"},
	{Display: "Neurologist", ID: "Neurologist"},
	{Display: "Oncologist", ID: "Oncologist"},
	{Display: "Ayurveda", ID: "Ayurveda"},
	{Display: "Homeopath", ID: "Homeopath"},
}
