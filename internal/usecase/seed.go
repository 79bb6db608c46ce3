package usecase

import (
	"time"

	"contract_tracker/internal/domain/entities"
)

const day = 24 * time.Hour

func daysAgo(now time.Time, n int) string {
	return now.Add(-time.Duration(n) * day).Format(entities.DateLayout)
}

// DefaultBlueprints is the example set used when nothing usable is persisted.
func DefaultBlueprints(now time.Time) []entities.Blueprint {
	return []entities.Blueprint{
		{
			ID:          "blueprint-1",
			Name:        "Standard Service Contract",
			Description: "Template for service agreements",
			Fields: []entities.Field{
				{ID: "field-1", Type: entities.FieldTypeText, Label: "Contract Name", Position: entities.Position{X: 50, Y: 100}, Required: true},
				{ID: "field-2", Type: entities.FieldTypeText, Label: "Client Name", Position: entities.Position{X: 50, Y: 150}, Required: true},
				{ID: "field-3", Type: entities.FieldTypeDate, Label: "Start Date", Position: entities.Position{X: 50, Y: 200}, Required: true},
				{ID: "field-4", Type: entities.FieldTypeDate, Label: "End Date", Position: entities.Position{X: 300, Y: 200}},
				{ID: "field-5", Type: entities.FieldTypeText, Label: "Contract Value", Position: entities.Position{X: 50, Y: 250}},
				{ID: "field-6", Type: entities.FieldTypeText, Label: "Description", Position: entities.Position{X: 50, Y: 300}},
				{ID: "field-7", Type: entities.FieldTypeSignature, Label: "Signature", Position: entities.Position{X: 50, Y: 450}, Required: true},
				{ID: "field-8", Type: entities.FieldTypeCheckbox, Label: "Terms and Conditions Accepted", Position: entities.Position{X: 50, Y: 550}, Required: true},
			},
			CreatedAt: daysAgo(now, 7),
		},
		{
			ID:          "blueprint-2",
			Name:        "Employment Contract",
			Description: "Template for employment agreements",
			Fields: []entities.Field{
				{ID: "field-1", Type: entities.FieldTypeText, Label: "Employee Name", Position: entities.Position{X: 50, Y: 100}, Required: true},
				{ID: "field-2", Type: entities.FieldTypeText, Label: "Position", Position: entities.Position{X: 50, Y: 150}, Required: true},
				{ID: "field-3", Type: entities.FieldTypeDate, Label: "Start Date", Position: entities.Position{X: 50, Y: 200}, Required: true},
				{ID: "field-4", Type: entities.FieldTypeText, Label: "Salary", Position: entities.Position{X: 50, Y: 250}, Required: true},
				{ID: "field-5", Type: entities.FieldTypeSignature, Label: "Employee Signature", Position: entities.Position{X: 50, Y: 400}, Required: true},
				{ID: "field-6", Type: entities.FieldTypeSignature, Label: "Employer Signature", Position: entities.Position{X: 300, Y: 400}, Required: true},
				{ID: "field-7", Type: entities.FieldTypeCheckbox, Label: "Background Check Completed", Position: entities.Position{X: 50, Y: 500}, Required: true},
			},
			CreatedAt: daysAgo(now, 5),
		},
	}
}

// DefaultContracts is the example contract set. None of them carry a signature.
func DefaultContracts(now time.Time) []entities.Contract {
	return []entities.Contract{
		{
			ID:            12345,
			Name:          "Software Development Agreement",
			Type:          "Service",
			Status:        entities.ContractStatusApproved,
			CreatedAt:     daysAgo(now, 5),
			ClientName:    "Tech Solutions Inc.",
			ContractValue: "$50,000",
			Description:   "Development of custom web application with React and Node.js backend.",
		},
		{
			ID:            23456,
			Name:          "Office Lease Agreement",
			Type:          "Lease",
			Status:        entities.ContractStatusSent,
			CreatedAt:     daysAgo(now, 10),
			ClientName:    "ABC Corporation",
			ContractValue: "$2,400/month",
			Description:   "Annual lease agreement for office space in downtown building.",
		},
		{
			ID:            34567,
			Name:          "Employment Contract",
			Type:          "Employment",
			Status:        entities.ContractStatusSigned,
			CreatedAt:     daysAgo(now, 15),
			ClientName:    "John Smith",
			ContractValue: "$75,000/year",
			Description:   "Full-time employment contract for Senior Developer position.",
		},
		{
			ID:            45678,
			Name:          "Service Maintenance Contract",
			Type:          "Service",
			Status:        entities.ContractStatusCreated,
			CreatedAt:     daysAgo(now, 2),
			ClientName:    "XYZ Industries",
			ContractValue: "$15,000",
			Description:   "Monthly maintenance and support services for enterprise software.",
		},
		{
			ID:            56789,
			Name:          "Consulting Services Agreement",
			Type:          "Standard",
			Status:        entities.ContractStatusLocked,
			CreatedAt:     daysAgo(now, 30),
			ClientName:    "Global Enterprises Ltd.",
			ContractValue: "$100,000",
			Description:   "Strategic consulting services for digital transformation project.",
		},
	}
}
