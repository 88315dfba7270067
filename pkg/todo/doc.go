// Package todo provides a Go client for a TODO-list HTTP API such as
// jsonplaceholder.typicode.com/todos.
//
// Every operation is asynchronous: it returns immediately and delivers
// exactly one Result to the supplied callback once the request completes.
// Concurrent calls are independent and may complete in any order.
//
// # Getting Started
//
//	client, err := todo.NewClient(
//	    todo.WithBaseURL("http://jsonplaceholder.typicode.com"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client.GetTaskByID(ctx, "1", func(r todo.Result[todo.Task]) {
//	    task, err := r.Get()
//	    ...
//	})
//
// Use Await when a blocking call is more convenient:
//
//	result := todo.Await(func(done func(todo.Result[[]todo.Task])) {
//	    client.GetAllTasks(ctx, done)
//	})
//
// # Operations
//
//	GetAllTasks      GET    /todos
//	GetTaskByID      GET    /todos/{id}
//	AddTaskToUser    POST   /todos
//	UpdateTask       PUT    /todos/{id}
//	DeleteTaskByID   DELETE /todos/{id}
//
// # Error Handling
//
// A failed Result always carries a *ClientError of one of three kinds:
//
//	KindNetwork       the exchange failed, or the body was not a valid task payload
//	KindItemNotFound  the server answered 404
//	KindUnknown       any other non-2xx status; the status is in Code
//
// Helpers mirror the kinds:
//
//	task, err := result.Get()
//	if err != nil {
//	    if todo.IsItemNotFound(err) {
//	        // no such task
//	    } else if code, ok := todo.IsUnknownError(err); ok {
//	        log.Printf("server returned %d", code)
//	    }
//	}
//
// The client never retries, caches or authenticates.
package todo
