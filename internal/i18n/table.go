package i18n

// Chat message keys.
const (
	KeyChatGreeting = "chat.greeting"
	KeyChatReply    = "chat.reply"
	KeyChatEnded    = "chat.ended"
)

// Validation issue keys. Keys ending in a %s take a parameter.
const (
	KeyIssueRequired      = "validation.required"
	KeyIssueMaxLength     = "validation.max"
	KeyIssueOneOf         = "validation.oneof"
	KeyIssueEstimatedTime = "validation.estimated_time"
	KeyIssueDepartment    = "validation.department"
	KeyIssueUrgency       = "validation.urgency"
	KeyIssueStatus        = "validation.status"
	KeyIssueSort          = "validation.sort"
	KeyIssueLang          = "validation.lang"
)

var table = map[Lang]map[string]string{
	English: {
		"app.name":         "HostiTask",
		"app.welcome":      "Welcome to HostiTask",
		"app.welcome_hint": "Use the sidebar to navigate to create tasks or view existing tasks.",
		"role.front_desk":  "Front Desk",
		"role.manager":     "Manager",
		"nav.dashboard":    "Dashboard",
		"nav.create_task":  "Create Task",
		"nav.view_tasks":   "View Tasks",
		"nav.logout":       "Logout",
		"nav.ai_assistant": "AI Assistant",

		"status.pending":     "Pending",
		"status.in-progress": "In Progress",
		"status.done":        "Done",
		"status.not-done":    "Not Done",

		"department.housekeeping": "Housekeeping",
		"department.kitchen":      "Kitchen",
		"department.maintenance":  "Maintenance",

		"urgency.urgent":   "Urgent",
		"urgency.standard": "Standard",

		"task_form.title":                     "Create New Task",
		"task_form.description":               "Task Description",
		"task_form.description_placeholder":   "Describe the guest request...",
		"task_form.guest_contact_placeholder": "Phone or email",
		"task_form.submit":                    "Submit Task",

		"task_list.title":           "All Tasks",
		"task_list.search":          "Search tasks...",
		"task_list.all_departments": "All Departments",
		"task_list.all_statuses":    "All Status",
		"task_list.sort_by":         "Sort by",
		"task_list.no_tasks":        "No tasks found",
		"task_list.view_details":    "View Details",
		"task_list.task_details":    "Task Details",
		"task_list.actions":         "Actions",
		"sort.urgency":              "Urgency",
		"sort.status":               "Status",
		"sort.date":                 "Date",

		"task.id":             "ID",
		"task.description":    "Description",
		"task.department":     "Department",
		"task.guest_contact":  "Guest Contact",
		"task.created_at":     "Created At",
		"task.delay_reason":   "Delay Reason",
		"task.assigned_to":    "Assigned To",
		"task.estimated_time": "Estimated Time",
		"task.minutes":        "minutes",

		"action.mark_done":          "Mark as Done",
		"action.mark_not_done":      "Mark as Not Done",
		"action.take_task":          "Take Task",
		"claim.title":               "Staff Availability",
		"claim.staff_name":          "Your Name",
		"claim.staff_name_hint":     "Enter your name",
		"claim.estimated_time":      "Estimated Time (minutes)",
		"claim.estimated_time_hint": "e.g., 30",
		"claim.submit":              "Submit Availability",

		"stats.total_tasks":     "Total Tasks",
		"stats.urgent_tasks":    "Urgent Tasks",
		"stats.completed_tasks": "Completed Tasks",

		"analytics.title":               "Analytics Dashboard",
		"analytics.completion_rate":     "Completion Rate",
		"analytics.avg_completion_time": "Avg Completion Time",
		"analytics.tasks_by_status":     "Tasks by Status",
		"analytics.tasks_by_department": "Tasks by Department",
		"analytics.delay_reasons":       "Delay Reasons",
		"analytics.hours":               "hours",

		"chat.title":       "Chat with Manager",
		"chat.placeholder": "Type your message...",
		"chat.send":        "Send",
		"chat.you":         "You",
		"chat.online":      "Online",
		"chat.end":         "End Chat",
		KeyChatGreeting:    "Hello! How can I help you today?",
		KeyChatReply:       "Thank you for your message. I'll get back to you shortly.",
		KeyChatEnded:       "Chat ended. Thank you for contacting us!",

		KeyIssueRequired:      "required field missing",
		KeyIssueMaxLength:     "must be at most %s characters",
		KeyIssueOneOf:         "must be one of %s",
		KeyIssueEstimatedTime: "must be a whole number of minutes greater than zero",
		KeyIssueDepartment:    "must be one of housekeeping, kitchen, maintenance",
		KeyIssueUrgency:       "must be urgent or standard",
		KeyIssueStatus:        "invalid task status",
		KeyIssueSort:          "must be one of urgency, status, date",
		KeyIssueLang:          "must be en or ka",
	},
	Georgian: {
		"app.name":         "HostiTask",
		"app.welcome":      "კეთილი იყოს თქვენი მობრძანება HostiTask-ში",
		"app.welcome_hint": "გამოიყენეთ გვერდითი პანელი დავალებების შესაქმნელად ან არსებული დავალებების სანახავად.",
		"role.front_desk":  "მიმღები",
		"role.manager":     "მენეჯერი",
		"nav.dashboard":    "დაშბორდი",
		"nav.create_task":  "დავალების შექმნა",
		"nav.view_tasks":   "დავალებების ნახვა",
		"nav.logout":       "გასვლა",
		"nav.ai_assistant": "AI ასისტენტი",

		"status.pending":     "მოლოდინში",
		"status.in-progress": "მუშავდება",
		"status.done":        "დასრულებული",
		"status.not-done":    "არ არის დასრულებული",

		"department.housekeeping": "დასუფთავება",
		"department.kitchen":      "სამზარეულო",
		"department.maintenance":  "ტექნიკური მომსახურება",

		"urgency.urgent":   "გადაუდებელი",
		"urgency.standard": "სტანდარტული",

		"task_form.title":                     "ახალი დავალების შექმნა",
		"task_form.description":               "დავალების აღწერა",
		"task_form.description_placeholder":   "აღწერეთ სტუმრის მოთხოვნა...",
		"task_form.guest_contact_placeholder": "ტელეფონი ან ელ-ფოსტა",
		"task_form.submit":                    "დავალების გაგზავნა",

		"task_list.title":           "ყველა დავალება",
		"task_list.search":          "ძებნა...",
		"task_list.all_departments": "ყველა დეპარტამენტი",
		"task_list.all_statuses":    "ყველა სტატუსი",
		"task_list.sort_by":         "დალაგება",
		"task_list.no_tasks":        "დავალებები არ მოიძებნა",
		"task_list.view_details":    "დეტალების ნახვა",
		"task_list.task_details":    "დავალების დეტალები",
		"task_list.actions":         "მოქმედებები",
		"sort.urgency":              "სისწრაფე",
		"sort.status":               "სტატუსი",
		"sort.date":                 "თარიღი",

		"task.id":             "ID",
		"task.description":    "აღწერა",
		"task.department":     "დეპარტამენტი",
		"task.guest_contact":  "სტუმრის კონტაქტი",
		"task.created_at":     "შექმნის თარიღი",
		"task.delay_reason":   "დაგვიანების მიზეზი",
		"task.assigned_to":    "დანიშნულია",
		"task.estimated_time": "სავარაუდო დრო",
		"task.minutes":        "წუთი",

		"action.mark_done":          "დასრულებულად მონიშვნა",
		"action.mark_not_done":      "არადასრულებულად მონიშვნა",
		"action.take_task":          "დავალების აღება",
		"claim.title":               "თანამშრომლის ხელმისაწვდომობა",
		"claim.staff_name":          "თქვენი სახელი",
		"claim.staff_name_hint":     "შეიყვანეთ თქვენი სახელი",
		"claim.estimated_time":      "სავარაუდო დრო (წუთები)",
		"claim.estimated_time_hint": "მაგ., 30",
		"claim.submit":              "ხელმისაწვდომობის გაგზავნა",

		"stats.total_tasks":     "სულ დავალებები",
		"stats.urgent_tasks":    "გადაუდებელი დავალებები",
		"stats.completed_tasks": "დასრულებული დავალებები",

		"analytics.title":               "ანალიტიკის დაშბორდი",
		"analytics.completion_rate":     "დასრულების მაჩვენებელი",
		"analytics.avg_completion_time": "საშუალო დასრულების დრო",
		"analytics.tasks_by_status":     "დავალებები სტატუსის მიხედვით",
		"analytics.tasks_by_department": "დავალებები დეპარტამენტის მიხედვით",
		"analytics.delay_reasons":       "დაგვიანების მიზეზები",
		"analytics.hours":               "საათი",

		"chat.title":       "მენეჯერთან ჩატი",
		"chat.placeholder": "დაწერეთ შეტყობინება...",
		"chat.send":        "გაგზავნა",
		"chat.you":         "თქვენ",
		"chat.online":      "ონლაინ",
		"chat.end":         "ჩატის დასრულება",
		KeyChatGreeting:    "მოგესალმებით, რითი შემიძლია თქვენი დახმარება?",
		KeyChatReply:       "მადლობა დაკავშირებისთვის, მენეჯერი მალე გიპასუხებთ.",
		KeyChatEnded:       "ჩატი დასრულდა. მადლობა დაკავშირებისთვის!",

		KeyIssueRequired:      "სავალდებულო ველი",
		KeyIssueMaxLength:     "მაქსიმუმ %s სიმბოლო",
		KeyIssueOneOf:         "დასაშვები მნიშვნელობები: %s",
		KeyIssueEstimatedTime: "უნდა იყოს ნულზე მეტი წუთების მთელი რიცხვი",
		KeyIssueDepartment:    "დასაშვები მნიშვნელობები: housekeeping, kitchen, maintenance",
		KeyIssueUrgency:       "დასაშვები მნიშვნელობები: urgent, standard",
		KeyIssueStatus:        "დავალების არასწორი სტატუსი",
		KeyIssueSort:          "დასაშვები მნიშვნელობები: urgency, status, date",
		KeyIssueLang:          "დასაშვები მნიშვნელობები: en, ka",
	},
}
