package service

// NavigatorSessions reports how many users hold a live selection.
func NavigatorSessions(svc NavigatorService) int {
	n := svc.(*navigatorService)
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sessions)
}
