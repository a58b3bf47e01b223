package facility

type Facility struct {
	ID           int     `db:"id" json:"facilityId"`
	Address      string  `db:"address" json:"address"`
	RoomNumber   string  `db:"room_number" json:"roomNumber"`
	EquipmentSet *string `db:"equipment_set" json:"equipmentSet,omitempty"`
}

type Usage struct {
	ID         int    `db:"id" json:"usageId"`
	FacilityID int    `db:"facility_id" json:"facilityId"`
	BookingID  int    `db:"booking_id" json:"bookingId"`
	TrainerID  int    `db:"trainer_id" json:"trainerId"`
	StartTime  string `db:"start_time" json:"startTime"`
	EndTime    string `db:"end_time" json:"endTime"`
	UsageDate  string `db:"usage_date" json:"usageDate"`
}
