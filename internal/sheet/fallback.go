package sheet

import "apjatelpmo/internal/model"

// DemoVendors and DemoProjects are served when the sheet backend is
// unreachable and the cache is cold, so the portal stays demonstrable
// offline. The ids are stable so the two sets reference each other.

func DemoVendors() []model.Vendor {
	return []model.Vendor{
		{ID: "admin", Name: "APJATEL PMO", Email: "pmo@apjatel.or.id"},
		{ID: "v-telaga", Name: "PT Telaga Jaringan", Email: "ops@telagajaringan.co.id"},
		{ID: "v-nusantara", Name: "PT Nusantara Fiber", Email: "project@nusantarafiber.co.id"},
	}
}

func DemoProjects() []model.Project {
	return []model.Project{
		{
			ID:                      "prj-001",
			VendorID:                "v-telaga",
			VendorAppointmentNumber: "SPK/2025/001",
			Name:                    "Relokasi Jl. Sudirman Seksi 2",
			Location:                "Jakarta",
			Status:                  model.StatusInProgress,
			Progress:                62.5,
			Budget:                  1_250_000_000,
			Spent:                   640_000_000,
			StartDate:               "2025-05-05",
			EndDate:                 "2025-11-28",
			CutOffDate:              "2025-12-15",
			LengthMeter:             3200,
			Initiator:               "Dinas Bina Marga DKI",
			RelocationReason:        "Pelebaran jalan",
			Category:                model.CategoryRelocation,
			WorkItems: []model.WorkItem{
				{ID: "w-001", Name: "Galian Manual", Unit: "m", PlanQty: 3200, ActualQty: 2400},
				{ID: "w-002", Name: "Gelar Subduct HDPE", Unit: "m", PlanQty: 3200, ActualQty: 1600},
				{ID: "w-003", Name: "Pembangunan Handhole", Unit: "unit", PlanQty: 18, ActualQty: 12},
			},
			Operators: []model.ProjectOperator{
				{
					ID: "op-001", Name: "Telkomsel",
					ParticipationLength: 3200, AccessLength: 150, CrossingLength: 80,
					HHSharedQty: 14, HHPrivateQty: 4,
					StatusMaterial: model.MaterialOnSite,
					StatusPulling:  model.WorkInProgress,
					StatusCutOver:  model.WorkNotStarted,
					JointSurveyStatus: model.SurveyDone,
					AdminDocStatus:    model.DocSubmitted,
					AdminPOStatus:     model.POIssued,
				},
				{
					ID: "op-002", Name: "IOH",
					ParticipationLength: 2800, AccessLength: 90, CrossingLength: 60,
					HHSharedQty: 14, HHPrivateQty: 2,
					StatusMaterial: model.MaterialPartial,
					StatusPulling:  model.WorkNotStarted,
					StatusCutOver:  model.WorkNotStarted,
					JointSurveyStatus: model.SurveyScheduled,
					AdminDocStatus:    model.DocDraft,
					AdminPOStatus:     model.POProcessing,
				},
			},
			ScheduleItems: []model.ScheduleItem{
				{ID: "s-001", Description: "Joint survey", StartWeek: 1, DurationWeeks: 2},
				{ID: "s-002", Description: "Galian & subduct", StartWeek: 3, DurationWeeks: 8, Predecessors: []string{"s-001"}},
				{ID: "s-003", Description: "Penarikan kabel", StartWeek: 9, DurationWeeks: 6, Predecessors: []string{"s-002"}},
				{ID: "s-004", Description: "Cut over", StartWeek: 15, DurationWeeks: 2, Predecessors: []string{"s-003"}},
			},
			RequiredDocuments: []model.DocumentStatus{
				{Name: "SPK", HasFile: true, FileName: "spk-001.pdf"},
				{Name: "Izin Galian", HasFile: true, FileName: "izin-001.pdf"},
				{Name: "BAST", HasFile: false},
			},
		},
		{
			ID:                      "prj-002",
			VendorID:                "v-telaga",
			VendorAppointmentNumber: "SPK/2025/014",
			Name:                    "Relokasi Flyover Antasari",
			Location:                "Jakarta",
			Status:                  model.StatusDelayed,
			Progress:                28,
			Budget:                  780_000_000,
			Spent:                   310_000_000,
			StartDate:               "2025-03-10",
			EndDate:                 "2025-08-01",
			LengthMeter:             1450,
			Initiator:               "Dinas Bina Marga DKI",
			RelocationReason:        "Pembangunan flyover",
			Category:                model.CategoryRelocation,
			WorkItems: []model.WorkItem{
				{ID: "w-011", Name: "Galian Manual", Unit: "m", PlanQty: 1450, ActualQty: 600},
				{ID: "w-012", Name: "Gelar Subduct HDPE", Unit: "m", PlanQty: 1450, ActualQty: 200},
			},
			Operators: []model.ProjectOperator{
				{
					ID: "op-011", Name: "XL Smart",
					ParticipationLength: 1450, AccessLength: 40, CrossingLength: 120,
					HHSharedQty: 8, HHPrivateQty: 1,
					StatusMaterial: model.MaterialNotYet,
					StatusPulling:  model.WorkNotStarted,
					StatusCutOver:  model.WorkNotStarted,
					JointSurveyStatus: model.SurveyRescheduled,
					AdminDocStatus:    model.DocPending,
					AdminPOStatus:     model.PONotIssued,
				},
			},
			ScheduleItems: []model.ScheduleItem{
				{ID: "s-011", Description: "Joint survey", StartWeek: 1, DurationWeeks: 2},
				{ID: "s-012", Description: "Galian & subduct", StartWeek: 2, DurationWeeks: 10, Predecessors: []string{"s-011"}},
			},
			RequiredDocuments: []model.DocumentStatus{
				{Name: "SPK", HasFile: true, FileName: "spk-014.pdf"},
				{Name: "Izin Galian", HasFile: false},
			},
		},
		{
			ID:                      "prj-003",
			VendorID:                "v-nusantara",
			VendorAppointmentNumber: "SPK/2025/019",
			Name:                    "Relokasi Jl. Asia Afrika",
			Location:                "Bandung",
			Status:                  model.StatusCompleted,
			Progress:                100,
			Budget:                  540_000_000,
			Spent:                   525_000_000,
			StartDate:               "2025-01-20",
			EndDate:                 "2025-06-30",
			LengthMeter:             2100,
			Initiator:               "Pemkot Bandung",
			RelocationReason:        "Penataan utilitas",
			Category:                model.CategoryOperator,
			WorkItems: []model.WorkItem{
				{ID: "w-021", Name: "Galian Manual", Unit: "m", PlanQty: 2100, ActualQty: 2100},
				{ID: "w-022", Name: "Penarikan Kabel FO", Unit: "m", PlanQty: 2100, ActualQty: 2100},
			},
			Operators: []model.ProjectOperator{
				{
					ID: "op-021", Name: "Biznet",
					ParticipationLength: 2100, AccessLength: 60, CrossingLength: 30,
					HHSharedQty: 10, HHPrivateQty: 3,
					CableType:      "FO 144",
					StatusMaterial: model.MaterialOnSite,
					StatusPulling:  model.WorkDone,
					StatusCutOver:  model.WorkDone,
					JointSurveyStatus: model.SurveyDone,
					AdminDocStatus:    model.DocApproved,
					AdminPOStatus:     model.POPaid,
				},
			},
			RequiredDocuments: []model.DocumentStatus{
				{Name: "SPK", HasFile: true, FileName: "spk-019.pdf"},
				{Name: "BAST", HasFile: true, FileName: "bast-019.pdf"},
			},
		},
	}
}
