package generate_mock_data

// Request параметры генерации mock-данных
type Request struct {
	Users          int  // количество создаваемых пользователей
	MinCarsPerUser int  // минимум автомобилей на пользователя
	MaxCarsPerUser int  // максимум автомобилей на пользователя
	Sessions       int  // количество создаваемых парковочных сессий
	AssumeYes      bool // пропустить интерактивное подтверждение (для пайплайнов)
}

// Summary итоги прогона генератора
type Summary struct {
	// Создано этим прогоном
	UsersCreated     int
	CarsCreated      int
	SessionsCreated  int
	ActiveCreated    int // созданные сессии без end_time
	CompletedCreated int // созданные сессии с end_time

	// Состояние базы после коммита
	TotalUsers    int64
	TotalCars     int64
	TotalSessions int64
	TotalActive   int64
}
