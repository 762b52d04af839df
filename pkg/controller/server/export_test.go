package server

func EventRepositoryForTest(event any) (string, string) {
	return eventRepository(event)
}
