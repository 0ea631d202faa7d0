package catalog

import "medibook/models"

// defaultCatalog is the out-of-the-box set of bookable tests and departments.
// Price ranges are display strings only.
func defaultCatalog() []models.Service {
	return []models.Service{
		{ID: "svc-ecg", Name: "ECG", Category: "Cardiology", PriceRange: "₹300 - ₹600"},
		{ID: "svc-2d-echo", Name: "2D Echo", Category: "Cardiology", PriceRange: "₹1,500 - ₹2,500"},
		{ID: "svc-lipid-profile", Name: "Lipid Profile", Category: "Cardiology", PriceRange: "₹500 - ₹900"},
		{ID: "svc-mri-brain", Name: "MRI Brain", Category: "Neurology", PriceRange: "₹4,000 - ₹8,000"},
		{ID: "svc-ct-scan", Name: "CT Scan", Category: "Neurology", PriceRange: "₹2,500 - ₹5,000"},
		{ID: "svc-eeg", Name: "EEG", Category: "Neurology", PriceRange: "₹1,000 - ₹1,800"},
		{ID: "svc-xray", Name: "X-Ray", Category: "Orthopedics", PriceRange: "₹250 - ₹500"},
		{ID: "svc-dexa-scan", Name: "DEXA Scan", Category: "Orthopedics", PriceRange: "₹2,000 - ₹3,500"},
		{ID: "svc-lft", Name: "Liver Function Test", Category: "Pathology", PriceRange: "₹400 - ₹800"},
		{ID: "svc-kft", Name: "Kidney Function Test", Category: "Pathology", PriceRange: "₹400 - ₹800"},
		{ID: "svc-urine-analysis", Name: "Urine Analysis", Category: "Pathology", PriceRange: "₹150 - ₹300"},
		{ID: "svc-full-body", Name: "Full Body Checkup", Category: "Packages", PriceRange: "₹2,999 - ₹5,999"},
		{ID: "svc-cardiac-package", Name: "Cardiac Health Package", Category: "Packages", PriceRange: "₹1,999 - ₹3,999"},
		{ID: "svc-diabetes-package", Name: "Diabetes Care Package", Category: "Packages", PriceRange: "₹999 - ₹1,999"},
		{ID: "svc-opd-general", Name: "General Medicine OPD", Category: "OPD", PriceRange: "₹500 - ₹1,000"},
		{ID: "svc-opd-ophthalmology", Name: "Ophthalmology OPD", Category: "OPD", PriceRange: "₹600 - ₹1,200"},
	}
}
