package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RegisterPersonRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Skills   string `json:"skills"`
	Location string `json:"location"`
}

type RegisterBusinessRequest struct {
	Name     string `json:"name"`
	Field    string `json:"field"`
	About    string `json:"about"`
	Email    string `json:"email"`
	Location string `json:"location"`
}

type UpdatePersonRequest struct {
	PersonID string `json:"person_id"`
	FullName string `json:"full_name"`
	Skills   string `json:"skills"`
	Location string `json:"location"`
}

type PersonResponse struct {
	PersonID string `json:"person_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Skills   string `json:"skills"`
	Location string `json:"location"`
}

type BusinessResponse struct {
	BusinessID string `json:"business_id"`
	Name       string `json:"name"`
	Field      string `json:"field"`
	About      string `json:"about"`
	Email      string `json:"email"`
	Location   string `json:"location"`
}

type RegisterPersonResponse struct {
	Person PersonResponse `json:"person"`
}

type RegisterBusinessResponse struct {
	Business BusinessResponse `json:"business"`
}

type BusinessesResponse struct {
	Businesses []BusinessResponse `json:"businesses"`
}

type CreateJobRequest struct {
	BusinessID        string   `json:"business_id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Skills            string   `json:"skills"`
	Location          string   `json:"location"`
	EmploymentType    string   `json:"employment_type"`
	NumberOfPositions int      `json:"number_of_positions"`
	AssignedTo        []string `json:"assigned_to"`
	JobApplicants     []string `json:"job_applicants"`
}

type JobResponse struct {
	JobID             string   `json:"job_id"`
	CompanyID         string   `json:"company_id"`
	CompanyName       string   `json:"company_name"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Skills            string   `json:"skills"`
	Location          string   `json:"location"`
	EmploymentType    string   `json:"employment_type"`
	NumberOfPositions int      `json:"number_of_positions"`
	AssignedTo        []string `json:"assigned_to"`
	JobApplicants     []string `json:"job_applicants"`
	CreatedAt         *string  `json:"created_at,omitempty"`
}

type CreateJobResponse struct {
	Job JobResponse `json:"job"`
}

type MatchedJobResponse struct {
	JobResponse
	Score int `json:"score"`
}

type RelevantJobsResponse struct {
	Count int                  `json:"count"`
	Jobs  []MatchedJobResponse `json:"jobs"`
}

type AllJobsResponse struct {
	Count int           `json:"count"`
	Jobs  []JobResponse `json:"jobs"`
}

type ApplicationRequest struct {
	PersonID string `json:"person_id"`
}

type ApplicationResponse struct {
	Job JobResponse `json:"job"`
}

type JobRosterResponse struct {
	Job        JobResponse      `json:"job"`
	Assigned   []PersonResponse `json:"assigned"`
	Applicants []PersonResponse `json:"applicants"`
}

type BusinessJobsResponse struct {
	Jobs []JobRosterResponse `json:"jobs"`
}

type TeamResponse struct {
	JobID   string           `json:"job_id"`
	JobName string           `json:"job_name"`
	Members []PersonResponse `json:"members"`
}

type TeamsResponse struct {
	Teams []TeamResponse `json:"teams"`
}

type EmployeesResponse struct {
	Users []PersonResponse `json:"users"`
}

type CreateTaskRequest struct {
	BusinessID  string   `json:"business_id"`
	Name        string   `json:"name"`
	Importance  string   `json:"importance"`
	Description string   `json:"description"`
	AssignedTo  []string `json:"assigned_to"`
	DueDate     string   `json:"due_date"`
	Status      string   `json:"status"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

type TaskResponse struct {
	TaskID      string   `json:"task_id"`
	BusinessID  string   `json:"business_id"`
	Name        string   `json:"name"`
	Importance  string   `json:"importance"`
	Description string   `json:"description"`
	AssignedTo  []string `json:"assigned_to"`
	DueDate     string   `json:"due_date"`
	Status      string   `json:"status"`
	CreatedAt   *string  `json:"created_at,omitempty"`
}

type CreateTaskResponse struct {
	Task TaskResponse `json:"task"`
}

type TasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}
