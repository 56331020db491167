package store

import "github.com/mklimuk/minutes-pilot/pkg/model"

// The built-in dataset loaded when nothing usable is persisted yet.

func seedContacts() []model.Contact {
	return []model.Contact{
		{ID: 1, FirstName: "Payam", LastName: "Khoshtinat", Phone: "09123456789", OrgEmail: "payam.khoshtinat@gmail.com", PersonalEmail: "payam.k@gmail.com", Gender: model.GenderMale, Role: model.RoleAdmin, Position: "CEO", Password: model.DefaultPassword},
		{ID: 2, FirstName: "Maryam", LastName: "Joushan", Phone: "09123456788", OrgEmail: "maryam.joushan@company.com", PersonalEmail: "maryam.j@gmail.com", Gender: model.GenderFemale, Role: model.RoleSecretary, Position: "Office Manager", Password: model.DefaultPassword},
		{ID: 3, FirstName: "Babak", LastName: "Rastegar", Phone: "09123456787", OrgEmail: "babak.rastegar@company.com", PersonalEmail: "babak.r@gmail.com", Gender: model.GenderMale, Role: model.RoleNormal, Position: "Sales Specialist", Password: model.DefaultPassword},
		{ID: 4, FirstName: "Setayesh", LastName: "Zangeneh", Phone: "09123456786", OrgEmail: "setayesh.zangeneh@company.com", PersonalEmail: "setayesh.z@gmail.com", Gender: model.GenderFemale, Role: model.RoleNormal, Position: "Marketing Specialist", Password: model.DefaultPassword},
		{ID: 5, FirstName: "Majid", LastName: "Ostadali", Phone: "09123456785", OrgEmail: "majid.ostadali@company.com", PersonalEmail: "majid.o@gmail.com", Gender: model.GenderMale, Role: model.RoleNormal, Position: "Technical Manager", Password: model.DefaultPassword},
	}
}

func seedMeetings() []model.Meeting {
	return []model.Meeting{
		{ID: 1, MeetingNumber: "14030415-1", Title: "Q1 sales review", SecretaryID: 2, Company: "Our Company", Location: "Main conference room", Date: "1403/04/15", AttendeeIDs: []int64{1, 2, 3, 4}},
		{ID: 2, MeetingNumber: "14030501-2", Title: "New marketing campaign planning", SecretaryID: 2, Company: "Our Company", Location: "Online", Date: "1403/05/01", AttendeeIDs: []int64{1, 2, 4, 5}},
	}
}

func seedTasks() []model.Task {
	return []model.Task{
		{ID: 1, MeetingID: 1, Description: "Prepare the final sales report and present it at the next meeting", ActionType: model.ActionForAction, AssigneeID: 3, DueDate: "1403/04/25", Status: model.StatusInProgress},
		{ID: 2, MeetingID: 1, Description: "Investigate the sales drop in the northern region", ActionType: model.ActionForFollowUp, AssigneeID: 4, DueDate: "1403/04/30", Status: model.StatusDone, ClaimedStatus: model.StatusDone},
		{ID: 3, MeetingID: 2, Description: "Design the campaign banners", ActionType: model.ActionForAction, AssigneeID: 4, DueDate: "1403/05/10", Status: model.StatusNotDone},
		{ID: 4, MeetingID: 2, Description: "Build the campaign landing page", ActionType: model.ActionForAction, AssigneeID: 5, DueDate: "1403/05/15", Status: model.StatusWaiting, WaitingFor: "Final content approval from the marketing team"},
		{ID: 5, MeetingID: 2, Description: "Inform the whole team about the campaign launch", ActionType: model.ActionForInfo, AssigneeID: 2, DueDate: "1403/05/05", Status: model.StatusDone},
		{ID: 6, MeetingID: 1, Description: "Review and approve the Q2 marketing budget", ActionType: model.ActionForAction, AssigneeID: 1, DueDate: "1403/05/20", Status: model.StatusNotDone},
		{ID: 7, MeetingID: 2, Description: "Coordinate campaign infrastructure with the technical team", ActionType: model.ActionForFollowUp, AssigneeID: 2, DueDate: "1403/05/12", Status: model.StatusInProgress},
	}
}
